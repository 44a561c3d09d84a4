package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/metrics"
	"github.com/venue-booking-portal/internal/pkg/utils"
)

// LanguageHandler - переключение языка интерфейса
type LanguageHandler struct {
	provider *i18n.Provider
	logger   *zap.Logger
}

// NewLanguageHandler создает новый экземпляр LanguageHandler
func NewLanguageHandler(provider *i18n.Provider, logger *zap.Logger) *LanguageHandler {
	return &LanguageHandler{
		provider: provider,
		logger:   logger,
	}
}

// Switch - POST /language. Без lang язык переключается на противоположный.
func (h *LanguageHandler) Switch(c *fiber.Ctx) error {
	raw := c.FormValue("lang")
	if raw == "" {
		lang := h.provider.Toggle()
		metrics.RecordLanguageSwitch(string(lang))
		return c.Redirect(utils.SafeRedirectPath(c.FormValue("return"), "/"), fiber.StatusSeeOther)
	}

	lang, ok := i18n.ParseLanguage(raw)
	if !ok {
		return errors.ErrInvalidLanguage.WithDetails(map[string]interface{}{
			"language": raw,
		})
	}
	if err := h.provider.SetLanguage(lang); err != nil {
		return err
	}
	metrics.RecordLanguageSwitch(string(lang))

	return c.Redirect(utils.SafeRedirectPath(c.FormValue("return"), "/"), fiber.StatusSeeOther)
}
