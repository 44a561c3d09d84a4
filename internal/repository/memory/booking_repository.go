package memory

import (
	"strings"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
)

type bookingRepository struct {
	bookings []domain.Booking
}

// NewBookingRepository creates a read-only store over the sample bookings
func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{bookings: sampleBookings()}
}

func (r *bookingRepository) List() []domain.Booking {
	return r.bookings
}

func (r *bookingRepository) GetByID(id string) (*domain.Booking, bool) {
	for i := range r.bookings {
		if strings.EqualFold(r.bookings[i].ID, id) {
			return &r.bookings[i], true
		}
	}
	return nil, false
}

func (r *bookingRepository) GetDetail(id string) (*domain.BookingDetail, bool) {
	booking, ok := r.GetByID(id)
	if !ok {
		return nil, false
	}
	return &domain.BookingDetail{
		Booking:   *booking,
		Approvals: sampleApprovals(booking.ID),
		Documents: sampleDocuments(booking.ID),
		Messages:  sampleMessages(booking.ID),
	}, true
}
