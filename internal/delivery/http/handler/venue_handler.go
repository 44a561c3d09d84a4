package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// VenuesData - данные страницы списка
type VenuesData struct {
	Result  *dto.VenueListResult
	Types   []domain.FacilityType
	Buckets []domain.CapacityBucket
}

// VenueHandler - страницы каталога
type VenueHandler struct {
	catalogUC *usecase.CatalogUseCase
	renderer  *view.Renderer
	logger    *zap.Logger
}

// NewVenueHandler создает новый экземпляр VenueHandler
func NewVenueHandler(catalogUC *usecase.CatalogUseCase, renderer *view.Renderer, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		catalogUC: catalogUC,
		renderer:  renderer,
		logger:    logger,
	}
}

// List - каталог с фильтрами. Некорректный фильтр показывает весь каталог с уведомлением.
func (h *VenueHandler) List(c *fiber.Ctx) error {
	var filter dto.VenueFilter
	if err := c.QueryParser(&filter); err != nil {
		h.logger.Debug("Failed to parse venue filter", zap.Error(err))
	}

	page := view.Page{Title: "venues.title", Nav: "venues"}
	status := fiber.StatusOK

	result, err := h.catalogUC.ListVenues(c.UserContext(), filter)
	if err != nil {
		page.Toast = toastMessage(h.renderer.Locale(), err)
		status = fiber.StatusBadRequest
		result, err = h.catalogUC.ListVenues(c.UserContext(), dto.VenueFilter{})
		if err != nil {
			return err
		}
	}

	page.Data = VenuesData{
		Result:  result,
		Types:   domain.ValidFacilityTypes(),
		Buckets: domain.ValidCapacityBuckets(),
	}
	return h.renderer.Render(c, status, "venues", page)
}

// Detail - карточка территории, неизвестный id отдаёт 404 со ссылкой на каталог
func (h *VenueHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.catalogUC.GetVenueDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.ErrVenueNotFound.Is(err) {
			return h.renderer.Render(c, fiber.StatusNotFound, "not_found", view.Page{
				Title: "venue.notFound.title",
				Nav:   "venues",
				Data:  venueNotFound,
			})
		}
		return err
	}

	return h.renderer.Render(c, fiber.StatusOK, "venue_detail", view.Page{
		Title: h.renderer.Locale().Pick(detail.Site.Name),
		Nav:   "venues",
		Data:  detail,
	})
}
