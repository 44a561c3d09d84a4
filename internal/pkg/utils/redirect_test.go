package utils_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-booking-portal/internal/pkg/utils"
)

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"/booking/step1", "/booking/step1"},
		{"/venues?type=park", "/venues?type=park"},
		{"", "/my-bookings"},
		{"https://evil.example", "/my-bookings"},
		{"//evil.example/path", "/my-bookings"},
		{"/\\evil.example", "/my-bookings"},
		{"booking/step1", "/my-bookings"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.SafeRedirectPath(tt.target, "/my-bookings"))
		})
	}
}

func TestWithQuery(t *testing.T) {
	params := url.Values{}
	params.Set("venue", "terra")
	params.Set("facility", "")

	assert.Equal(t, "/booking/step1?venue=terra", utils.WithQuery("/booking/step1", params))
	assert.Equal(t, "/booking/step1?lang=ar&venue=terra", utils.WithQuery("/booking/step1?lang=ar", params))
}
