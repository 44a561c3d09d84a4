package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/repository/memory"
)

func TestVenueRepository_GetFacilityByID(t *testing.T) {
	repo := memory.NewVenueRepository()

	for _, site := range repo.ListVenueSites() {
		for _, f := range site.Facilities {
			got, ok := repo.GetFacilityByID(site.ID, f.ID)
			require.True(t, ok, "facility %s must resolve in site %s", f.ID, site.ID)
			assert.Equal(t, f.ID, got.ID)
		}
	}

	t.Run("facility of another site is not found", func(t *testing.T) {
		_, ok := repo.GetFacilityByID("al-wasl", "terra-auditorium")
		assert.False(t, ok)
	})

	t.Run("unknown site", func(t *testing.T) {
		_, ok := repo.GetFacilityByID("does-not-exist", "terra-auditorium")
		assert.False(t, ok)
	})
}

func TestVenueRepository_GetVenueSiteByID(t *testing.T) {
	repo := memory.NewVenueRepository()

	site, ok := repo.GetVenueSiteByID("terra")
	require.True(t, ok)
	assert.Equal(t, "Terra Auditorium", site.Facilities[0].Name.En)

	_, ok = repo.GetVenueSiteByID("does-not-exist")
	assert.False(t, ok)
}

func TestVenueRepository_ListVenueSitesReturnsCopy(t *testing.T) {
	repo := memory.NewVenueRepository()

	sites := repo.ListVenueSites()
	require.NotEmpty(t, sites)
	sites[0].ID = "changed"
	sites[0].Facilities[0].ID = "changed"
	sites = append(sites[:0], sites[1:]...)

	again := repo.ListVenueSites()
	assert.Equal(t, "al-wasl", again[0].ID)
	assert.Equal(t, "al-wasl-plaza", again[0].Facilities[0].ID)
	assert.Len(t, again, len(sites)+1)
}

func TestVenueRepository_GetFacilityByIDGlobal(t *testing.T) {
	sites := []domain.VenueSite{
		{ID: "first", Facilities: []domain.Facility{{ID: "hall"}, {ID: "lawn"}}},
		{ID: "second", Facilities: []domain.Facility{{ID: "hall"}}},
	}
	repo := memory.NewVenueRepositoryWithSites(sites)

	t.Run("first match in catalog order wins", func(t *testing.T) {
		pair, ok := repo.GetFacilityByIDGlobal("hall")
		require.True(t, ok)
		assert.Equal(t, "first", pair.Site.ID)
		assert.Equal(t, "hall", pair.Facility.ID)
	})

	t.Run("not found", func(t *testing.T) {
		pair, ok := repo.GetFacilityByIDGlobal("garden")
		assert.False(t, ok)
		assert.Nil(t, pair.Site)
	})
}

func TestVenueRepository_GetAllFacilities(t *testing.T) {
	sites := []domain.VenueSite{
		{ID: "a", Facilities: []domain.Facility{{ID: "a1"}, {ID: "a2"}}},
		{ID: "b", Facilities: []domain.Facility{{ID: "b1"}}},
	}
	repo := memory.NewVenueRepositoryWithSites(sites)

	all := repo.GetAllFacilities()
	require.Len(t, all, 3)

	var ids []string
	for _, pair := range all {
		ids = append(ids, pair.Site.ID+"/"+pair.Facility.ID)
	}
	assert.Equal(t, []string{"a/a1", "a/a2", "b/b1"}, ids)
}

func TestCatalog_FacilityIDsAreGloballyUnique(t *testing.T) {
	repo := memory.NewVenueRepository()

	seen := map[string]string{}
	for _, pair := range repo.GetAllFacilities() {
		prev, dup := seen[pair.Facility.ID]
		assert.False(t, dup, "facility %s declared in %s and %s", pair.Facility.ID, prev, pair.Site.ID)
		seen[pair.Facility.ID] = pair.Site.ID
	}
}

func TestCatalog_CapacitiesAndTypes(t *testing.T) {
	repo := memory.NewVenueRepository()

	for _, pair := range repo.GetAllFacilities() {
		f := pair.Facility
		assert.True(t, domain.IsValidFacilityType(string(f.Type)), f.ID)
		for _, v := range []*int{f.Capacity.Standing, f.Capacity.Seated, f.Capacity.Banquet, f.Capacity.Cocktail} {
			if v != nil {
				assert.GreaterOrEqual(t, *v, 0, f.ID)
			}
		}
	}
}
