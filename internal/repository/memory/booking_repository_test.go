package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/repository/memory"
)

func TestBookingRepository_ReferencesResolve(t *testing.T) {
	venues := memory.NewVenueRepository()
	bookings := memory.NewBookingRepository()

	for _, b := range bookings.List() {
		_, ok := venues.GetFacilityByID(b.SiteID, b.FacilityID)
		assert.True(t, ok, "booking %s references %s/%s", b.ID, b.SiteID, b.FacilityID)

		_, err := b.Day()
		assert.NoError(t, err, b.ID)
	}
}

func TestBookingRepository_StatusesAreValid(t *testing.T) {
	valid := map[domain.BookingStatus]bool{}
	for _, s := range domain.ValidBookingStatuses() {
		valid[s] = true
	}

	for _, b := range memory.NewBookingRepository().List() {
		assert.True(t, valid[b.Status], b.ID)
	}
}

func TestBookingRepository_GetByID(t *testing.T) {
	repo := memory.NewBookingRepository()

	tests := []struct {
		name  string
		id    string
		found bool
	}{
		{"exact", "EVD-2025-001", true},
		{"lower case", "evd-2025-002", true},
		{"unknown", "EVD-1999-000", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := repo.GetByID(tt.id)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.NotEmpty(t, b.EventName.En)
			}
		})
	}
}

func TestBookingRepository_GetDetail(t *testing.T) {
	repo := memory.NewBookingRepository()

	t.Run("under review booking has security in progress", func(t *testing.T) {
		detail, ok := repo.GetDetail("evd-2025-001")
		require.True(t, ok)
		require.Len(t, detail.Approvals, 7)
		assert.Equal(t, domain.ApprovalCompleted, detail.Approvals[1].State)
		assert.Equal(t, domain.ApprovalInProgress, detail.Approvals[2].State)
		assert.Equal(t, domain.ApprovalPending, detail.Approvals[6].State)
		assert.Len(t, detail.Documents, 4)
		assert.Len(t, detail.Messages, 3)
	})

	t.Run("approved booking has every stage completed", func(t *testing.T) {
		detail, ok := repo.GetDetail("EVD-2025-002")
		require.True(t, ok)
		for _, a := range detail.Approvals {
			assert.Equal(t, domain.ApprovalCompleted, a.State, a.ID)
			assert.NotEmpty(t, a.Date)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, ok := repo.GetDetail("nope")
		assert.False(t, ok)
	})
}
