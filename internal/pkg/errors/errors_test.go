package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	withDetails := errors.ErrVenueNotFound.WithDetails(map[string]interface{}{"id": "nope"})

	assert.Equal(t, "nope", withDetails.Details["id"])
	assert.Empty(t, errors.ErrVenueNotFound.Details)
	assert.True(t, stderrors.Is(withDetails, errors.ErrVenueNotFound))
	assert.False(t, stderrors.Is(withDetails, errors.ErrBookingNotFound))
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("step2: %w", errors.ErrStartDateRequired)

	appErr, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
	assert.Equal(t, "START_DATE_REQUIRED: Please select a start date", appErr.Error())

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}
