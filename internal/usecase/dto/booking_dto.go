package dto

import "github.com/venue-booking-portal/internal/domain"

// BookingView - заявка вместе с найденными в каталоге территорией и площадкой.
// Неразрешённые ссылки остаются nil.
type BookingView struct {
	Booking  domain.Booking    `json:"booking"`
	Site     *domain.VenueSite `json:"site,omitempty"`
	Facility *domain.Facility  `json:"facility,omitempty"`
}

// BookingDetailView - страница заявки
type BookingDetailView struct {
	BookingView
	Organizer domain.Organizer            `json:"organizer"`
	Approvals []domain.DepartmentApproval `json:"approvals"`
	Documents []domain.BookingDocument    `json:"documents"`
	Messages  []domain.BookingMessage     `json:"messages"`
}

// AvailabilityRequest - запрос упрощённой проверки доступности
type AvailabilityRequest struct {
	VenueID    string `query:"venue" json:"venue" validate:"required_without=FacilityID"`
	FacilityID string `query:"facility" json:"facility"`
	Date       string `query:"date" json:"date" validate:"required,date"`
}
