package handler

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/session"
	"github.com/venue-booking-portal/internal/pkg/utils"
	"github.com/venue-booking-portal/internal/pkg/validator"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// DefaultLoginRedirect - куда попадает организатор после входа без redirect
const DefaultLoginRedirect = "/my-bookings"

// LoginData - данные страницы входа
type LoginData struct {
	Register    bool
	Email       string
	Redirect    string
	Venue       string
	Facility    string
	SignInURL   string
	RegisterURL string
}

// AuthHandler - демо-вход, всегда успешный
type AuthHandler struct {
	sessions *session.Manager
	renderer *view.Renderer
	logger   *zap.Logger
}

// NewAuthHandler создает новый экземпляр AuthHandler
func NewAuthHandler(sessions *session.Manager, renderer *view.Renderer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		renderer: renderer,
		logger:   logger,
	}
}

// LoginPage - GET /login?redirect=&venue=&facility=&mode=register
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	form := dto.LoginForm{
		Mode:     c.Query("mode"),
		Redirect: c.Query("redirect"),
		Venue:    c.Query("venue"),
		Facility: c.Query("facility"),
	}
	return h.renderLogin(c, fiber.StatusOK, form, "")
}

// Login - POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderLogin(c, fiber.StatusBadRequest, form, toastMessage(h.renderer.Locale(), errors.ErrInvalidRequest))
	}

	if err := validator.Validate(form); err != nil {
		h.logger.Debug("Login form rejected", zap.Error(err))
		return h.renderLogin(c, fiber.StatusUnprocessableEntity, form, toastMessage(h.renderer.Locale(), errors.ErrInvalidCredentials))
	}

	if form.IsRegister() && form.ConfirmPassword != form.Password {
		return h.renderLogin(c, fiber.StatusUnprocessableEntity, form, toastMessage(h.renderer.Locale(), errors.ErrPasswordMismatch))
	}

	organizer := domain.SampleOrganizer
	organizer.Email = form.Email

	token, err := h.sessions.Issue(organizer)
	if err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		return errors.ErrInternalServer
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	target := utils.SafeRedirectPath(form.Redirect, DefaultLoginRedirect)
	target = utils.WithQuery(target, url.Values{
		"venue":    {form.Venue},
		"facility": {form.Facility},
	})

	h.logger.Info("Organizer signed in",
		zap.String("email", organizer.Email),
		zap.Bool("register", form.IsRegister()),
	)

	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, status int, form dto.LoginForm, toast string) error {
	params := url.Values{
		"redirect": {form.Redirect},
		"venue":    {form.Venue},
		"facility": {form.Facility},
	}
	register := url.Values{"mode": {dto.LoginModeRegister}}
	for k, v := range params {
		register[k] = v
	}

	title := "login.title"
	if form.IsRegister() {
		title = "login.registerTitle"
	}

	return h.renderer.Render(c, status, "login", view.Page{
		Title: title,
		Toast: toast,
		Data: LoginData{
			Register:    form.IsRegister(),
			Email:       form.Email,
			Redirect:    form.Redirect,
			Venue:       form.Venue,
			Facility:    form.Facility,
			SignInURL:   utils.WithQuery("/login", params),
			RegisterURL: utils.WithQuery("/login", register),
		},
	})
}
