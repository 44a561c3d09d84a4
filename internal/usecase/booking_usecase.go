package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/metrics"
	"github.com/venue-booking-portal/internal/pkg/telemetry"
	"github.com/venue-booking-portal/internal/pkg/validator"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// reservedSlot - дата, которую упрощённая проверка считает занятой
type reservedSlot struct {
	siteID     string
	facilityID string
	date       string
	bookingID  string
}

// reservedSlots - единственные занятые даты. Пустая площадка означает всю территорию.
var reservedSlots = []reservedSlot{
	{siteID: "terra", facilityID: "terra-auditorium", date: "2025-02-15", bookingID: "EVD-2025-001"},
	{siteID: "jubilee-park", date: "2025-03-22", bookingID: "EVD-2025-002"},
}

// BookingUseCase - заявки организатора и проверка доступности
type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	venueRepo   repository.VenueRepository
	logger      *zap.Logger
}

// NewBookingUseCase создает новый экземпляр BookingUseCase
func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	venueRepo repository.VenueRepository,
	logger *zap.Logger,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// ListBookings возвращает заявки с найденными территориями и площадками
func (uc *BookingUseCase) ListBookings(ctx context.Context) []dto.BookingView {
	_, span := telemetry.StartSpan(ctx, "booking.list")
	defer span.End()

	bookings := uc.bookingRepo.List()
	views := make([]dto.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, uc.resolve(b))
	}
	span.SetAttributes(attribute.Int("bookings.count", len(views)))
	return views
}

// resolve - неразрешённые ссылки остаются nil
func (uc *BookingUseCase) resolve(b domain.Booking) dto.BookingView {
	view := dto.BookingView{Booking: b}
	if site, ok := uc.venueRepo.GetVenueSiteByID(b.SiteID); ok {
		view.Site = site
	} else {
		uc.logger.Debug("Booking references unknown venue",
			zap.String("booking_id", b.ID),
			zap.String("venue_id", b.SiteID),
		)
	}
	if facility, ok := uc.venueRepo.GetFacilityByID(b.SiteID, b.FacilityID); ok {
		view.Facility = facility
	}
	return view
}

// GetBookingDetail возвращает заявку с согласованиями, документами и перепиской
func (uc *BookingUseCase) GetBookingDetail(ctx context.Context, id string) (*dto.BookingDetailView, error) {
	_, span := telemetry.StartSpan(ctx, "booking.detail", attribute.String("booking.id", id))
	defer span.End()

	detail, ok := uc.bookingRepo.GetDetail(id)
	if !ok {
		uc.logger.Debug("Booking not found", zap.String("booking_id", id))
		return nil, errors.ErrBookingNotFound.WithDetails(map[string]interface{}{"booking_id": id})
	}

	return &dto.BookingDetailView{
		BookingView: uc.resolve(detail.Booking),
		Organizer:   domain.SampleOrganizer,
		Approvals:   detail.Approvals,
		Documents:   detail.Documents,
		Messages:    detail.Messages,
	}, nil
}

// CheckAvailability - упрощённая проверка: сравнивает дату только с двумя
// зарезервированными парами, диапазоны и остальные заявки не учитываются.
func (uc *BookingUseCase) CheckAvailability(
	ctx context.Context,
	locale i18n.Locale,
	req dto.AvailabilityRequest,
) (*domain.AvailabilityResult, error) {
	_, span := telemetry.StartSpan(ctx, "booking.check_availability",
		attribute.String("venue.id", req.VenueID),
		attribute.String("facility.id", req.FacilityID),
		attribute.String("date", req.Date),
	)
	defer span.End()

	if err := validator.Validate(req); err != nil {
		if validator.HasFieldError(err, "Date") && req.Date != "" {
			return nil, errors.ErrInvalidDate.WithDetails(map[string]interface{}{"date": req.Date})
		}
		return nil, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
	}

	siteID := req.VenueID
	if siteID == "" {
		if pair, ok := uc.venueRepo.GetFacilityByIDGlobal(req.FacilityID); ok {
			siteID = pair.Site.ID
		}
	}

	result := &domain.AvailabilityResult{
		SiteID:     siteID,
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Available:  true,
		Message:    locale.T("availability.available"),
	}

	if slot, ok := findReservedSlot(siteID, req.FacilityID, req.Date); ok {
		result.Available = false
		result.BookingID = slot.bookingID
		eventName := slot.bookingID
		if b, found := uc.bookingRepo.GetByID(slot.bookingID); found {
			result.EventName = &b.EventName
			eventName = locale.Pick(b.EventName)
		}
		result.Message = locale.Tf("availability.reserved", eventName, slot.bookingID)
	}

	metrics.RecordAvailabilityCheck(result.Available)
	uc.logger.Debug("Availability checked",
		zap.String("venue_id", siteID),
		zap.String("facility_id", req.FacilityID),
		zap.String("date", req.Date),
		zap.Bool("available", result.Available),
	)

	return result, nil
}

func findReservedSlot(siteID, facilityID, date string) (reservedSlot, bool) {
	for _, slot := range reservedSlots {
		if slot.date != date || !strings.EqualFold(slot.siteID, siteID) {
			continue
		}
		if slot.facilityID == "" || facilityID == "" || slot.facilityID == facilityID {
			return slot, true
		}
	}
	return reservedSlot{}, false
}
