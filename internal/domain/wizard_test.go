package domain_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-booking-portal/internal/domain"
)

func TestWizardSession_URL(t *testing.T) {
	tests := []struct {
		name     string
		session  *domain.WizardSession
		expected string
	}{
		{"venue and facility", &domain.WizardSession{VenueID: "terra", FacilityID: "terra-auditorium"}, "/booking/step2?facility=terra-auditorium&venue=terra"},
		{"venue only", &domain.WizardSession{VenueID: "terra"}, "/booking/step2?venue=terra"},
		{"empty", &domain.WizardSession{}, "/booking/step2"},
		{"nil", nil, "/booking/step2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.session.URL(domain.StepScheduleVenue.Path()))
		})
	}
}

func TestParseConfirmationStatus(t *testing.T) {
	assert.Equal(t, domain.ConfirmationDraft, domain.ParseConfirmationStatus("draft"))
	assert.Equal(t, domain.ConfirmationSubmitted, domain.ParseConfirmationStatus("submitted"))
	assert.Equal(t, domain.ConfirmationSubmitted, domain.ParseConfirmationStatus(""))
	assert.Equal(t, domain.ConfirmationSubmitted, domain.ParseConfirmationStatus("DRAFT"))
}

func TestConfirmationURL(t *testing.T) {
	assert.Equal(t,
		"/booking/confirmation?ref=EVD-2025-003&status=submitted",
		domain.ConfirmationURL(domain.DefaultBookingReference, domain.ConfirmationSubmitted),
	)
	assert.Equal(t,
		"/booking/confirmation?ref=EVD-2025-003&status=draft",
		domain.ConfirmationURL(domain.DefaultBookingReference, domain.ConfirmationDraft),
	)
}

func TestBookingStatus_Label(t *testing.T) {
	for _, s := range domain.ValidBookingStatuses() {
		assert.Equal(t, string(s), s.Label(false))
		assert.NotEqual(t, s.Label(false), s.Label(true), s)
	}
	assert.Equal(t, "pending-payment", domain.BookingStatusPendingPayment.Slug())
}

func TestLanguage(t *testing.T) {
	assert.False(t, domain.LanguageEN.IsRTL())
	assert.True(t, domain.LanguageAR.IsRTL())
	assert.Equal(t, "rtl", domain.LanguageAR.Dir())

	text := domain.Text{En: "Jubilee Park", Ar: "حديقة اليوبيل"}
	assert.Equal(t, "حديقة اليوبيل", text.In(domain.LanguageAR))
	assert.True(t, text.ContainsFold("JUBILEE"))
	assert.True(t, text.ContainsFold("اليوبيل"))
	assert.False(t, text.ContainsFold("terra"))

	assert.Equal(t, "Only English", domain.Text{En: "Only English"}.In(domain.LanguageAR))
}

func TestSessionFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("venue", "terra")
	q.Set("facility", "terra-garden")

	session := domain.SessionFromQuery(q)
	assert.Equal(t, "terra", session.VenueID)
	assert.Equal(t, "terra-garden", session.FacilityID)
	assert.True(t, session.HasVenue())
	assert.Equal(t, q.Encode(), session.Query().Encode())

	assert.False(t, domain.SessionFromQuery(url.Values{}).HasVenue())
}
