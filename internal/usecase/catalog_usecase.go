package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/telemetry"
	"github.com/venue-booking-portal/internal/pkg/validator"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// CatalogUseCase - список и карточки территорий
type CatalogUseCase struct {
	venueRepo repository.VenueRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewCatalogUseCase создает новый экземпляр CatalogUseCase
func NewCatalogUseCase(venueRepo repository.VenueRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		venueRepo: venueRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// ListVenues фильтрует каталог. Результат пересчитывается на каждый запрос.
func (uc *CatalogUseCase) ListVenues(ctx context.Context, filter dto.VenueFilter) (*dto.VenueListResult, error) {
	_, span := telemetry.StartSpan(ctx, "catalog.list_venues",
		attribute.String("filter.type", filter.FacilityType),
		attribute.String("filter.capacity", filter.Capacity),
	)
	defer span.End()

	if err := validator.Validate(filter); err != nil {
		uc.logger.Debug("Invalid venue filter", zap.Error(err))
		return nil, errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
	}
	filter.Normalize()

	sites := FilterVenueSites(uc.venueRepo.ListVenueSites(), filter)

	cards := make([]dto.VenueCard, 0, len(sites))
	for i := range sites {
		cards = append(cards, newVenueCard(&sites[i]))
	}

	uc.logger.Debug("Venues filtered",
		zap.String("keyword", filter.Keyword),
		zap.String("type", filter.FacilityType),
		zap.String("capacity", filter.Capacity),
		zap.Int("count", len(cards)),
	)

	return &dto.VenueListResult{
		Filter: filter,
		Venues: cards,
		Total:  len(cards),
	}, nil
}

// FilterVenueSites - чистая проекция каталога с сохранением порядка.
// Дата фильтра не применяется.
func FilterVenueSites(sites []domain.VenueSite, filter dto.VenueFilter) []domain.VenueSite {
	bucket := domain.CapacityBucket(filter.Capacity)
	if bucket == "" {
		bucket = domain.CapacityBucketAll
	}

	result := make([]domain.VenueSite, 0, len(sites))
	for _, site := range sites {
		if !matchesKeyword(site, filter.Keyword) {
			continue
		}
		if !matchesFacilityType(site, filter.FacilityType) {
			continue
		}
		if !matchesCapacity(site, bucket) {
			continue
		}
		result = append(result, site)
	}
	return result
}

func matchesKeyword(site domain.VenueSite, keyword string) bool {
	if keyword == "" {
		return true
	}
	if site.Name.ContainsFold(keyword) || site.Description.ContainsFold(keyword) {
		return true
	}
	for _, f := range site.Facilities {
		if f.Name.ContainsFold(keyword) {
			return true
		}
	}
	return false
}

func matchesFacilityType(site domain.VenueSite, facilityType string) bool {
	if facilityType == "" || facilityType == "all" {
		return true
	}
	for _, f := range site.Facilities {
		if string(f.Type) == facilityType {
			return true
		}
	}
	return false
}

func matchesCapacity(site domain.VenueSite, bucket domain.CapacityBucket) bool {
	if bucket == domain.CapacityBucketAll {
		return true
	}
	for _, f := range site.Facilities {
		if bucket.Contains(domain.MaxCapacity(f.Capacity)) {
			return true
		}
	}
	return false
}

func newVenueCard(site *domain.VenueSite) dto.VenueCard {
	card := dto.VenueCard{
		Site:          site,
		MaxCapacity:   domain.SiteMaxCapacity(*site),
		TotalCapacity: domain.TotalSiteCapacity(*site),
	}
	seen := make(map[domain.FacilityType]bool)
	for _, f := range site.Facilities {
		if !seen[f.Type] {
			seen[f.Type] = true
			card.FacilityTypes = append(card.FacilityTypes, f.Type)
		}
		if f.Indoor {
			card.HasIndoor = true
		} else {
			card.HasOutdoor = true
		}
	}
	return card
}

// GetVenueDetail возвращает страницу территории с календарём текущего месяца
func (uc *CatalogUseCase) GetVenueDetail(ctx context.Context, siteID string) (*dto.VenueDetail, error) {
	_, span := telemetry.StartSpan(ctx, "catalog.venue_detail", attribute.String("venue.id", siteID))
	defer span.End()

	site, ok := uc.venueRepo.GetVenueSiteByID(siteID)
	if !ok {
		uc.logger.Debug("Venue not found", zap.String("venue_id", siteID))
		return nil, errors.ErrVenueNotFound.WithDetails(map[string]interface{}{"venue_id": siteID})
	}

	facilities := make([]dto.FacilityView, 0, len(site.Facilities))
	for i := range site.Facilities {
		f := &site.Facilities[i]
		facilities = append(facilities, dto.FacilityView{
			Facility:    f,
			MaxCapacity: domain.MaxCapacity(f.Capacity),
			BookingURL:  StartBookingURL(site.ID, f.ID),
		})
	}

	now := uc.now()
	return &dto.VenueDetail{
		Site:          site,
		Facilities:    facilities,
		TotalCapacity: domain.TotalSiteCapacity(*site),
		MaxCapacity:   domain.SiteMaxCapacity(*site),
		BookingURL:    StartBookingURL(site.ID, ""),
		Calendar:      BuildCalendar(now.Year(), now.Month()),
	}, nil
}

// GetFacility ищет площадку внутри территории
func (uc *CatalogUseCase) GetFacility(ctx context.Context, siteID, facilityID string) (*domain.Facility, error) {
	_, span := telemetry.StartSpan(ctx, "catalog.facility",
		attribute.String("venue.id", siteID),
		attribute.String("facility.id", facilityID),
	)
	defer span.End()

	if _, ok := uc.venueRepo.GetVenueSiteByID(siteID); !ok {
		return nil, errors.ErrVenueNotFound.WithDetails(map[string]interface{}{"venue_id": siteID})
	}
	facility, ok := uc.venueRepo.GetFacilityByID(siteID, facilityID)
	if !ok {
		return nil, errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{
			"venue_id":    siteID,
			"facility_id": facilityID,
		})
	}
	return facility, nil
}

// FindFacility ищет площадку по всему каталогу
func (uc *CatalogUseCase) FindFacility(ctx context.Context, facilityID string) (domain.SiteFacility, error) {
	_, span := telemetry.StartSpan(ctx, "catalog.find_facility", attribute.String("facility.id", facilityID))
	defer span.End()

	pair, ok := uc.venueRepo.GetFacilityByIDGlobal(facilityID)
	if !ok {
		return domain.SiteFacility{}, errors.ErrFacilityNotFound.WithDetails(map[string]interface{}{"facility_id": facilityID})
	}
	return pair, nil
}

// ListFacilities возвращает все площадки каталога
func (uc *CatalogUseCase) ListFacilities(ctx context.Context) []domain.SiteFacility {
	_, span := telemetry.StartSpan(ctx, "catalog.list_facilities")
	defer span.End()

	return uc.venueRepo.GetAllFacilities()
}

// ListSites - все территории для выпадающих списков мастера
func (uc *CatalogUseCase) ListSites() []domain.VenueSite {
	return uc.venueRepo.ListVenueSites()
}

// StartBookingURL - ссылка "Начать бронирование": сначала вход, затем шаг 1
func StartBookingURL(siteID, facilityID string) string {
	q := (&domain.WizardSession{VenueID: siteID, FacilityID: facilityID}).Query()
	q.Set(domain.QueryRedirect, domain.StepEventDetails.Path())
	return "/login?" + q.Encode()
}

// BuildCalendar раскрашивает месяц: кратные 7 заняты, кратные 5 ограничены.
// С бронированиями не связан.
func BuildCalendar(year int, month time.Month) dto.CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := dto.CalendarMonth{Year: year, Month: int(month)}
	for i := 0; i < int(first.Weekday()); i++ {
		cal.Days = append(cal.Days, dto.CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cal.Days = append(cal.Days, dto.CalendarDay{Day: day, State: calendarState(day)})
	}
	return cal
}

func calendarState(day int) dto.CalendarState {
	switch {
	case day%7 == 0:
		return dto.CalendarBooked
	case day%5 == 0:
		return dto.CalendarLimited
	default:
		return dto.CalendarAvailable
	}
}
