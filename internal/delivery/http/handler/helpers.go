package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
)

// NotFoundData - данные страницы "не найдено"
type NotFoundData struct {
	TitleKey string
	DescKey  string
	BackURL  string
	BackKey  string
}

var (
	pageNotFound = NotFoundData{
		TitleKey: "notFound.title",
		DescKey:  "notFound.desc",
		BackURL:  "/",
		BackKey:  "common.backToHome",
	}
	venueNotFound = NotFoundData{
		TitleKey: "venue.notFound.title",
		DescKey:  "venue.notFound.desc",
		BackURL:  "/venues",
		BackKey:  "venue.backToVenues",
	}
	bookingNotFound = NotFoundData{
		TitleKey: "booking.notFound.title",
		DescKey:  "booking.notFound.desc",
		BackURL:  "/my-bookings",
		BackKey:  "booking.backToBookings",
	}
)

// queryValues - query string запроса в виде url.Values
func queryValues(c *fiber.Ctx) url.Values {
	q, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return url.Values{}
	}
	return q
}

// sessionFromRequest - сессия мастера из query string
func sessionFromRequest(c *fiber.Ctx) *domain.WizardSession {
	return domain.SessionFromQuery(queryValues(c))
}

// toastMessage - локализованный текст ошибки для всплывающего уведомления
func toastMessage(locale i18n.Locale, err error) string {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}
	key := "errors." + appErr.Code
	if msg := locale.T(key); msg != key {
		return msg
	}
	return appErr.Message
}
