package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/session"
)

// OrganizerKey - locals с профилем вошедшего организатора
const OrganizerKey = "organizer"

// Session читает cookie демо-входа. Невалидный токен просто игнорируется,
// страницы доступны и без входа.
func Session(manager *session.Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" {
			return c.Next()
		}

		organizer, err := manager.Parse(token)
		if err != nil {
			logger.Debug("Ignoring invalid session cookie", zap.Error(err))
			c.ClearCookie(session.CookieName)
			return c.Next()
		}

		c.Locals(OrganizerKey, organizer)
		return c.Next()
	}
}

// CurrentOrganizer returns the signed-in organizer or nil
func CurrentOrganizer(c *fiber.Ctx) *domain.Organizer {
	if o, ok := c.Locals(OrganizerKey).(*domain.Organizer); ok {
		return o
	}
	return nil
}
