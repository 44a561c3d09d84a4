package repository

import "github.com/venue-booking-portal/internal/domain"

// VenueRepository определяет методы чтения каталога территорий и площадок.
// Отсутствие записи - это false, а не ошибка.
type VenueRepository interface {
	// ListVenueSites возвращает территории в порядке объявления
	ListVenueSites() []domain.VenueSite

	// GetVenueSiteByID ищет территорию по идентификатору
	GetVenueSiteByID(id string) (*domain.VenueSite, bool)

	// GetFacilityByID ищет площадку только внутри указанной территории
	GetFacilityByID(siteID, facilityID string) (*domain.Facility, bool)

	// GetFacilityByIDGlobal ищет площадку по всему каталогу, первая найденная побеждает
	GetFacilityByIDGlobal(facilityID string) (domain.SiteFacility, bool)

	// GetAllFacilities возвращает все пары территория/площадка
	GetAllFacilities() []domain.SiteFacility
}
