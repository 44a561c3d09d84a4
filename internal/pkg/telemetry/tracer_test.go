package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/pkg/telemetry"
)

func TestInit_Disabled(t *testing.T) {
	tel, err := telemetry.Init(context.Background(), &telemetry.Config{Enabled: false, ServiceName: "venue-portal"})
	require.NoError(t, err)
	require.NotNil(t, tel)

	ctx, span := telemetry.StartSpan(context.Background(), "test.span")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.Equal(t, "", telemetry.GetTraceID(ctx))
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestInit_NilConfig(t *testing.T) {
	_, err := telemetry.Init(context.Background(), nil)
	assert.NoError(t, err)
}
