package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/pkg/utils"
	"github.com/venue-booking-portal/internal/usecase"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get catalog statistics
// @Description Возвращает агрегированную статистику каталога территорий и заявок. Ответ кешируется.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param refresh query bool false "Пересчитать в обход кеша"
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStatistics}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	h.logger.Debug("Handling get statistics request")

	getStats := h.statsUC.GetStatistics
	if c.QueryBool("refresh") {
		getStats = h.statsUC.RefreshStatistics
	}

	stats, err := getStats(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
