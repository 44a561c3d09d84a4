package domain

import (
	"net/url"
	"strconv"
)

// WizardStep - шаг мастера бронирования
type WizardStep int

const (
	StepEventDetails WizardStep = iota + 1
	StepScheduleVenue
	StepServices
	StepDocumentsReview
)

// Path returns the route of the step
func (s WizardStep) Path() string {
	return "/booking/step" + strconv.Itoa(int(s))
}

// Valid reports whether the step is one of the four wizard steps
func (s WizardStep) Valid() bool {
	return s >= StepEventDetails && s <= StepDocumentsReview
}

// Query parameter names shared by the wizard, login and confirmation routes
const (
	QueryVenue    = "venue"
	QueryFacility = "facility"
	QueryRedirect = "redirect"
	QueryRef      = "ref"
	QueryStatus   = "status"
)

// WizardSession - единственное состояние, передаваемое между шагами мастера.
// Остальные поля шагов живут только внутри своего шага.
type WizardSession struct {
	VenueID    string
	FacilityID string
}

// SessionFromQuery reads venue and facility from the query string
func SessionFromQuery(q url.Values) *WizardSession {
	return &WizardSession{
		VenueID:    q.Get(QueryVenue),
		FacilityID: q.Get(QueryFacility),
	}
}

// HasVenue reports whether a venue was carried into the wizard
func (s *WizardSession) HasVenue() bool {
	return s != nil && s.VenueID != ""
}

// Query encodes the session as query parameters, empty ids are omitted
func (s *WizardSession) Query() url.Values {
	q := url.Values{}
	if s == nil {
		return q
	}
	if s.VenueID != "" {
		q.Set(QueryVenue, s.VenueID)
	}
	if s.FacilityID != "" {
		q.Set(QueryFacility, s.FacilityID)
	}
	return q
}

// URL appends the session to a path
func (s *WizardSession) URL(path string) string {
	q := s.Query()
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// ConfirmationStatus - итог мастера
type ConfirmationStatus string

const (
	ConfirmationDraft     ConfirmationStatus = "draft"
	ConfirmationSubmitted ConfirmationStatus = "submitted"
)

// ParseConfirmationStatus treats everything except "draft" as submitted
func ParseConfirmationStatus(s string) ConfirmationStatus {
	if s == string(ConfirmationDraft) {
		return ConfirmationDraft
	}
	return ConfirmationSubmitted
}

// DefaultBookingReference - номер, который получает каждая новая заявка
const DefaultBookingReference = "EVD-2025-003"

// ConfirmationURL builds the confirmation route for a reference and status
func ConfirmationURL(ref string, status ConfirmationStatus) string {
	q := url.Values{}
	q.Set(QueryRef, ref)
	q.Set(QueryStatus, string(status))
	return "/booking/confirmation?" + q.Encode()
}
