package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// MyBookingsData - данные страницы "Мои заявки"
type MyBookingsData struct {
	Bookings []dto.BookingView
}

// BookingHandler - страницы заявок организатора
type BookingHandler struct {
	bookingUC *usecase.BookingUseCase
	renderer  *view.Renderer
	logger    *zap.Logger
}

// NewBookingHandler создает новый экземпляр BookingHandler
func NewBookingHandler(bookingUC *usecase.BookingUseCase, renderer *view.Renderer, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		renderer:  renderer,
		logger:    logger,
	}
}

// MyBookings - таблица демо-заявок
func (h *BookingHandler) MyBookings(c *fiber.Ctx) error {
	return h.renderer.Render(c, fiber.StatusOK, "my_bookings", view.Page{
		Title: "bookings.title",
		Nav:   "bookings",
		Data:  MyBookingsData{Bookings: h.bookingUC.ListBookings(c.UserContext())},
	})
}

// Detail - карточка заявки: согласования, документы, переписка
func (h *BookingHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.bookingUC.GetBookingDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.ErrBookingNotFound.Is(err) {
			return h.renderer.Render(c, fiber.StatusNotFound, "not_found", view.Page{
				Title: "booking.notFound.title",
				Nav:   "bookings",
				Data:  bookingNotFound,
			})
		}
		return err
	}

	return h.renderer.Render(c, fiber.StatusOK, "booking_detail", view.Page{
		Title: detail.Booking.ID,
		Nav:   "bookings",
		Data:  detail,
	})
}
