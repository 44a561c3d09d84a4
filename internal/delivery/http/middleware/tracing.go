package middleware

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/venue-booking-portal/internal/pkg/telemetry"
)

// TraceIDHeader is the header key for trace ID
const TraceIDHeader = "X-Trace-ID"

// Tracing открывает серверный span и кладёт контекст в c.UserContext()
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		carrier := propagation.HeaderCarrier(http.Header(c.GetReqHeaders()))
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		ctx, span := telemetry.StartSpan(ctx, fmt.Sprintf("%s %s", c.Method(), c.Path()),
			semconv.HTTPMethod(c.Method()),
			semconv.HTTPURL(c.BaseURL()+c.OriginalURL()),
			semconv.UserAgentOriginal(c.Get(fiber.HeaderUserAgent)),
			attribute.String("http.client_ip", c.IP()),
			attribute.String("request_id", GetRequestID(c)),
		)
		defer span.End()

		if traceID := telemetry.GetTraceID(ctx); traceID != "" {
			c.Set(TraceIDHeader, traceID)
		}

		c.SetUserContext(ctx)
		err := c.Next()

		span.SetAttributes(
			semconv.HTTPRoute(c.Route().Path),
			semconv.HTTPStatusCode(c.Response().StatusCode()),
		)
		if err != nil {
			telemetry.SetSpanError(ctx, err)
		}
		return err
	}
}
