package memory

import (
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
)

type venueRepository struct {
	sites []domain.VenueSite
}

// NewVenueRepository creates a repository over the built-in catalog
func NewVenueRepository() repository.VenueRepository {
	return &venueRepository{sites: sampleSites()}
}

// NewVenueRepositoryWithSites creates a repository over the given sites
func NewVenueRepositoryWithSites(sites []domain.VenueSite) repository.VenueRepository {
	return &venueRepository{sites: sites}
}

// ListVenueSites returns a copy of the catalog in its original order
func (r *venueRepository) ListVenueSites() []domain.VenueSite {
	sites := make([]domain.VenueSite, len(r.sites))
	for i, s := range r.sites {
		s.Facilities = append([]domain.Facility(nil), s.Facilities...)
		sites[i] = s
	}
	return sites
}

func (r *venueRepository) GetVenueSiteByID(id string) (*domain.VenueSite, bool) {
	for i := range r.sites {
		if r.sites[i].ID == id {
			return &r.sites[i], true
		}
	}
	return nil, false
}

func (r *venueRepository) GetFacilityByID(siteID, facilityID string) (*domain.Facility, bool) {
	site, ok := r.GetVenueSiteByID(siteID)
	if !ok {
		return nil, false
	}
	return site.FacilityByID(facilityID)
}

// GetFacilityByIDGlobal - линейный проход по каталогу, идентификаторы площадок
// считаются уникальными глобально, при коллизии побеждает первая
func (r *venueRepository) GetFacilityByIDGlobal(facilityID string) (domain.SiteFacility, bool) {
	for i := range r.sites {
		if f, ok := r.sites[i].FacilityByID(facilityID); ok {
			return domain.SiteFacility{Site: &r.sites[i], Facility: f}, true
		}
	}
	return domain.SiteFacility{}, false
}

func (r *venueRepository) GetAllFacilities() []domain.SiteFacility {
	var result []domain.SiteFacility
	for i := range r.sites {
		for j := range r.sites[i].Facilities {
			result = append(result, domain.SiteFacility{
				Site:     &r.sites[i],
				Facility: &r.sites[i].Facilities[j],
			})
		}
	}
	return result
}
