package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/session"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "abc-123", string(body))
		assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	})

	t.Run("generates id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		body, _ := io.ReadAll(resp.Body)
		assert.Len(t, string(body), 36)
		assert.Equal(t, string(body), resp.Header.Get(RequestIDHeader))
	})
}

func TestSession(t *testing.T) {
	manager := session.NewManager("test-secret", time.Hour)

	app := fiber.New()
	app.Use(Session(manager, zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error {
		if o := CurrentOrganizer(c); o != nil {
			return c.SendString(o.Email)
		}
		return c.SendString("anonymous")
	})

	token, err := manager.Issue(domain.SampleOrganizer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"no cookie", "", "anonymous"},
		{"valid token", token, domain.SampleOrganizer.Email},
		{"invalid token", "not-a-token", "anonymous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}
			resp, err := app.Test(req)
			require.NoError(t, err)

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(Recovery(zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
