package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/repository/memory"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

func newWizardUseCase() *usecase.WizardUseCase {
	return usecase.NewWizardUseCase(memory.NewVenueRepository(), zap.NewNop())
}

func TestWizardUseCase_NextFromStep1(t *testing.T) {
	uc := newWizardUseCase()
	ctx := context.Background()
	session := &domain.WizardSession{VenueID: "terra", FacilityID: "terra-auditorium"}

	tests := []struct {
		name     string
		form     dto.EventDetailsForm
		expected string
	}{
		{"keeps session", dto.EventDetailsForm{Title: "Summit"}, "/booking/step2?facility=terra-auditorium&venue=terra"},
		{"same venue keeps facility", dto.EventDetailsForm{Venue: "terra"}, "/booking/step2?facility=terra-auditorium&venue=terra"},
		{"other venue drops facility", dto.EventDetailsForm{Venue: "jubilee-park"}, "/booking/step2?venue=jubilee-park"},
		{"unknown venue is ignored", dto.EventDetailsForm{Venue: "atlantis"}, "/booking/step2?facility=terra-auditorium&venue=terra"},
		{"invalid event type does not block", dto.EventDetailsForm{EventType: "rave"}, "/booking/step2?facility=terra-auditorium&venue=terra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uc.NextFromStep1(ctx, session, tt.form))
		})
	}

	assert.Equal(t, "terra-auditorium", session.FacilityID, "session passed in is never mutated")
	assert.Equal(t, "/booking/step2", uc.NextFromStep1(ctx, nil, dto.EventDetailsForm{}))
}

func TestWizardUseCase_NextFromStep2(t *testing.T) {
	uc := newWizardUseCase()
	ctx := context.Background()
	session := &domain.WizardSession{VenueID: "terra", FacilityID: "terra-auditorium"}

	tests := []struct {
		name string
		form dto.ScheduleForm
		err  error
	}{
		{"missing start date", dto.ScheduleForm{}, errors.ErrStartDateRequired},
		{"malformed start date", dto.ScheduleForm{StartDate: "2025/04/15"}, errors.ErrInvalidDate},
		{"multi-day without end date", dto.ScheduleForm{StartDate: "2025-04-15", MultiDay: true}, errors.ErrEndDateRequired},
		{"end before start", dto.ScheduleForm{StartDate: "2025-04-15", EndDate: "2025-04-14", MultiDay: true}, errors.ErrEndBeforeStart},
		{"single day", dto.ScheduleForm{StartDate: "2025-04-15", StartTime: "09:00", EndTime: "17:00"}, nil},
		{"same start and end", dto.ScheduleForm{StartDate: "2025-04-15", EndDate: "2025-04-15", MultiDay: true}, nil},
		{"end date ignored for single day", dto.ScheduleForm{StartDate: "2025-04-15", EndDate: "2025-04-01"}, nil},
		{"malformed end date ignored for single day", dto.ScheduleForm{StartDate: "2025-05-01", EndDate: "x"}, nil},
		{"malformed end date for multi-day", dto.ScheduleForm{StartDate: "2025-05-01", EndDate: "x", MultiDay: true}, errors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, current, err := uc.NextFromStep2(ctx, session, tt.form)
			require.NotNil(t, current)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Empty(t, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/booking/step3?facility=terra-auditorium&venue=terra", next)
		})
	}

	t.Run("venue change survives a rejected guard", func(t *testing.T) {
		_, current, err := uc.NextFromStep2(ctx, session, dto.ScheduleForm{Venue: "al-wasl"})
		assert.ErrorIs(t, err, errors.ErrStartDateRequired)
		assert.Equal(t, &domain.WizardSession{VenueID: "al-wasl"}, current)
	})
}

func TestWizardUseCase_NextFromStep3(t *testing.T) {
	uc := newWizardUseCase()
	session := &domain.WizardSession{VenueID: "garden-in-the-sky"}

	next := uc.NextFromStep3(context.Background(), session, dto.ServicesForm{
		RiskLevel: "medium",
		AV:        []string{"sound", "led"},
	})
	assert.Equal(t, "/booking/step4?venue=garden-in-the-sky", next)
}

func TestWizardUseCase_SubmitAndDraft(t *testing.T) {
	uc := newWizardUseCase()
	ctx := context.Background()
	session := &domain.WizardSession{VenueID: "terra", FacilityID: "terra-auditorium"}

	_, err := uc.Submit(ctx, session, dto.ReviewForm{})
	assert.ErrorIs(t, err, errors.ErrTermsNotAccepted)

	next, err := uc.Submit(ctx, session, dto.ReviewForm{TermsAccepted: true})
	require.NoError(t, err)
	assert.Equal(t, "/booking/confirmation?ref=EVD-2025-003&status=submitted", next)

	assert.Equal(t, "/booking/confirmation?ref=EVD-2025-003&status=draft", uc.SaveDraft(ctx, session))
	assert.Equal(t, "/booking/confirmation?ref=EVD-2025-003&status=draft", uc.SaveDraft(ctx, nil))
}

func TestWizardUseCase_BackURL(t *testing.T) {
	uc := newWizardUseCase()
	full := &domain.WizardSession{VenueID: "terra", FacilityID: "terra-garden"}

	tests := []struct {
		name     string
		step     domain.WizardStep
		session  *domain.WizardSession
		expected string
	}{
		{"step1 to venue", domain.StepEventDetails, full, "/venues/terra"},
		{"step1 without venue", domain.StepEventDetails, &domain.WizardSession{}, "/venues"},
		{"step2 to step1", domain.StepScheduleVenue, full, "/booking/step1?facility=terra-garden&venue=terra"},
		{"step3 to step2", domain.StepServices, full, "/booking/step2?facility=terra-garden&venue=terra"},
		{"step4 to step3", domain.StepDocumentsReview, full, "/booking/step3?facility=terra-garden&venue=terra"},
		{"step4 without session", domain.StepDocumentsReview, nil, "/booking/step3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uc.BackURL(tt.step, tt.session))
			assert.Equal(t, tt.expected, uc.Back(tt.step, tt.session))
		})
	}
}

func TestWizardUseCase_Context(t *testing.T) {
	uc := newWizardUseCase()

	wc := uc.Context(&domain.WizardSession{VenueID: "terra", FacilityID: "terra-garden"}, domain.StepScheduleVenue)
	require.NotNil(t, wc.Site)
	require.NotNil(t, wc.Facility)
	assert.Equal(t, "Terra Forest Garden", wc.Facility.Name.En)

	wc = uc.Context(&domain.WizardSession{VenueID: "terra", FacilityID: "sky-deck"}, domain.StepServices)
	assert.NotNil(t, wc.Site)
	assert.Nil(t, wc.Facility)

	wc = uc.Context(nil, domain.StepEventDetails)
	assert.NotNil(t, wc.Session)
	assert.Nil(t, wc.Site)
	assert.Equal(t, "/venues", wc.BackURL)

	assert.Equal(t, "terra", uc.SelectedVenue(&domain.WizardSession{}))
	assert.Equal(t, "al-wasl", uc.SelectedVenue(&domain.WizardSession{VenueID: "al-wasl"}))
}

func TestWizardUseCase_Review(t *testing.T) {
	review := newWizardUseCase().Review()
	assert.Equal(t, "Innovation Summit 2025", review.Title.En)
	assert.Equal(t, 350, review.Attendees)
	assert.Equal(t, "09:00 - 18:00", review.Time)
	assert.Equal(t, domain.SampleOrganizer, review.Organizer)
	assert.NotEmpty(t, review.Services)
}

func TestRemoveDocument(t *testing.T) {
	files := newWizardUseCase().DemoDocuments()
	require.Len(t, files, 3)

	left := usecase.RemoveDocument(files, 1)
	require.Len(t, left, 2)
	assert.Equal(t, "event_proposal_v2.pdf", left[0].Name)
	assert.Equal(t, "company_trade_license.pdf", left[1].Name)
	assert.Len(t, files, 3, "input slice is not modified")

	assert.Equal(t, files, usecase.RemoveDocument(files, 7))
	assert.Equal(t, files, usecase.RemoveDocument(files, -1))
}

func TestWizardUseCase_Confirmation(t *testing.T) {
	uc := newWizardUseCase()
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     string
		status  string
		wantRef string
		draft   bool
		label   domain.BookingStatus
	}{
		{"defaults", "", "", "EVD-2025-003", false, domain.BookingStatusSubmitted},
		{"draft", "EVD-2025-003", "draft", "EVD-2025-003", true, domain.BookingStatusDraft},
		{"unknown status is submitted", "EVD-2025-009", "approved", "EVD-2025-009", false, domain.BookingStatusSubmitted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := uc.Confirmation(ctx, tt.ref, tt.status)
			assert.Equal(t, tt.wantRef, view.Reference)
			assert.Equal(t, tt.draft, view.IsDraft)
			assert.Equal(t, tt.label, view.Label)
			assert.Equal(t, "bookings@expocitydubai.ae", view.Contact)
			assert.True(t, strings.HasPrefix(view.QRCode, "data:image/png;base64,"))
		})
	}
}

func TestWizardUseCase_ConfirmationPDF(t *testing.T) {
	uc := newWizardUseCase()

	out, err := uc.ConfirmationPDF(context.Background(), "EVD-2025-003", "submitted",
		&domain.WizardSession{VenueID: "terra", FacilityID: "terra-auditorium"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestWizardUseCase_Terms(t *testing.T) {
	terms := newWizardUseCase().Terms()
	require.Len(t, terms, 10)
	for _, term := range terms {
		assert.NotEmpty(t, term.En)
		assert.NotEmpty(t, term.Ar)
	}
}

func TestWizardUseCase_AddDocuments(t *testing.T) {
	uc := newWizardUseCase()

	files := uc.AddDocuments(nil, nil)
	assert.Equal(t, uc.DemoDocuments(), files)

	files = uc.AddDocuments(files, nil)
	assert.Len(t, files, 3, "demo files are not duplicated")

	files = uc.AddDocuments(files, []dto.UploadedFile{dto.NewUploadedFile("site_plan.pdf", 2_400_000)})
	require.Len(t, files, 4)
	assert.Equal(t, dto.UploadedFile{Name: "site_plan.pdf", Size: "2.4 MB"}, files[3])
}
