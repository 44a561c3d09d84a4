package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// HomeData - данные главной страницы
type HomeData struct {
	Benefits []string
	Steps    []int
	Featured []dto.VenueCard
}

// GuidelinesData - разделы страницы правил
type GuidelinesData struct {
	Sections []string
}

// PageHandler - статические страницы портала
type PageHandler struct {
	catalogUC *usecase.CatalogUseCase
	renderer  *view.Renderer
	logger    *zap.Logger
}

// NewPageHandler создает новый экземпляр PageHandler
func NewPageHandler(catalogUC *usecase.CatalogUseCase, renderer *view.Renderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		catalogUC: catalogUC,
		renderer:  renderer,
		logger:    logger,
	}
}

// Home - главная: hero, преимущества, как это работает
func (h *PageHandler) Home(c *fiber.Ctx) error {
	data := HomeData{
		Benefits: []string{"venues", "support", "tracking"},
		Steps:    []int{1, 2, 3},
	}

	result, err := h.catalogUC.ListVenues(c.UserContext(), dto.VenueFilter{})
	if err != nil {
		h.logger.Warn("Failed to load featured venues", zap.Error(err))
	} else if len(result.Venues) > 3 {
		data.Featured = result.Venues[:3]
	} else {
		data.Featured = result.Venues
	}

	return h.renderer.Render(c, fiber.StatusOK, "home", view.Page{Nav: "home", Data: data})
}

// Guidelines - FAQ и правила бронирования
func (h *PageHandler) Guidelines(c *fiber.Ctx) error {
	return h.renderer.Render(c, fiber.StatusOK, "guidelines", view.Page{
		Title: "guidelines.title",
		Nav:   "guidelines",
		Data:  GuidelinesData{Sections: []string{"booking", "faq", "contact"}},
	})
}

// NotFound - обработчик для всех неизвестных маршрутов
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	h.logger.Debug("Route not found", zap.String("path", c.Path()))
	return h.renderer.Render(c, fiber.StatusNotFound, "not_found", view.Page{
		Title: "notFound.title",
		Data:  pageNotFound,
	})
}
