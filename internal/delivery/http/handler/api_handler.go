package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/utils"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// HealthResponse - ответ проверки здоровья
type HealthResponse struct {
	Status   string `json:"status"`
	Language string `json:"language"`
}

// APIHandler - JSON API каталога и заявок
type APIHandler struct {
	catalogUC *usecase.CatalogUseCase
	bookingUC *usecase.BookingUseCase
	provider  *i18n.Provider
	logger    *zap.Logger
}

// NewAPIHandler создает новый экземпляр APIHandler
func NewAPIHandler(
	catalogUC *usecase.CatalogUseCase,
	bookingUC *usecase.BookingUseCase,
	provider *i18n.Provider,
	logger *zap.Logger,
) *APIHandler {
	return &APIHandler{
		catalogUC: catalogUC,
		bookingUC: bookingUC,
		provider:  provider,
		logger:    logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=HealthResponse}
// @Router /api/v1/health [get]
func (h *APIHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, HealthResponse{
		Status:   "ok",
		Language: string(h.provider.Language()),
	}, nil)
}

// ListVenues godoc
// @Summary Список территорий
// @Description Каталог территорий с фильтрами по ключевому слову, типу площадки и вместимости
// @Tags Venues
// @Accept json
// @Produce json
// @Param q query string false "Ключевое слово (EN или AR)"
// @Param type query string false "Тип площадки" default(all)
// @Param capacity query string false "Диапазон вместимости (0-500, 500-1000, 1000-3000, 3000+)" default(all)
// @Param date query string false "Дата YYYY-MM-DD, не влияет на результат"
// @Success 200 {object} utils.SuccessResponse{data=dto.VenueListResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues [get]
func (h *APIHandler) ListVenues(c *fiber.Ctx) error {
	var filter dto.VenueFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.catalogUC.ListVenues(c.UserContext(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetVenue godoc
// @Summary Территория по ID
// @Tags Venues
// @Produce json
// @Param id path string true "ID территории"
// @Success 200 {object} utils.SuccessResponse{data=dto.VenueDetail}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id} [get]
func (h *APIHandler) GetVenue(c *fiber.Ctx) error {
	detail, err := h.catalogUC.GetVenueDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}

// GetVenueFacility godoc
// @Summary Площадка территории
// @Tags Venues
// @Produce json
// @Param id path string true "ID территории"
// @Param facilityId path string true "ID площадки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Facility}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{id}/facilities/{facilityId} [get]
func (h *APIHandler) GetVenueFacility(c *fiber.Ctx) error {
	facility, err := h.catalogUC.GetFacility(c.UserContext(), c.Params("id"), c.Params("facilityId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, facility, nil)
}

// ListFacilities godoc
// @Summary Все площадки
// @Description Плоский список площадок всех территорий в порядке каталога
// @Tags Facilities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.SiteFacility}
// @Router /api/v1/facilities [get]
func (h *APIHandler) ListFacilities(c *fiber.Ctx) error {
	facilities := h.catalogUC.ListFacilities(c.UserContext())
	return utils.SendSuccess(c, facilities, &utils.Meta{
		Total: len(facilities),
	})
}

// GetFacility godoc
// @Summary Площадка по ID
// @Description Глобальный поиск площадки, первое совпадение по порядку каталога
// @Tags Facilities
// @Produce json
// @Param id path string true "ID площадки"
// @Success 200 {object} utils.SuccessResponse{data=domain.SiteFacility}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/facilities/{id} [get]
func (h *APIHandler) GetFacility(c *fiber.Ctx) error {
	found, err := h.catalogUC.FindFacility(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, found, nil)
}

// ListBookings godoc
// @Summary Заявки организатора
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BookingView}
// @Router /api/v1/bookings [get]
func (h *APIHandler) ListBookings(c *fiber.Ctx) error {
	bookings := h.bookingUC.ListBookings(c.UserContext())
	return utils.SendSuccess(c, bookings, &utils.Meta{
		Total: len(bookings),
	})
}

// GetBooking godoc
// @Summary Заявка по номеру
// @Tags Bookings
// @Produce json
// @Param id path string true "Номер заявки, например EVD-2025-001"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingDetailView}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id} [get]
func (h *APIHandler) GetBooking(c *fiber.Ctx) error {
	detail, err := h.bookingUC.GetBookingDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}

// CheckAvailability godoc
// @Summary Проверка доступности
// @Description Упрощённая проверка по фиксированному списку занятых дат
// @Tags Bookings
// @Produce json
// @Param venue query string false "ID территории (обязателен без facility)"
// @Param facility query string false "ID площадки"
// @Param date query string true "Дата YYYY-MM-DD"
// @Success 200 {object} utils.SuccessResponse{data=domain.AvailabilityResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/availability [get]
func (h *APIHandler) CheckAvailability(c *fiber.Ctx) error {
	var req dto.AvailabilityRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.bookingUC.CheckAvailability(c.UserContext(), h.provider.Locale(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
