package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venue-booking-portal/internal/domain"
)

func TestMaxCapacity(t *testing.T) {
	n := domain.IntPtr

	tests := []struct {
		name     string
		capacity domain.Capacity
		expected int
	}{
		{"empty", domain.Capacity{}, 0},
		{"single dimension", domain.Capacity{Seated: n(800)}, 800},
		{"largest wins", domain.Capacity{Standing: n(400), Banquet: n(200), Cocktail: n(300)}, 400},
		{"zero dimension", domain.Capacity{Seated: n(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.MaxCapacity(tt.capacity))
		})
	}
}

func TestSiteCapacity(t *testing.T) {
	n := domain.IntPtr
	site := domain.VenueSite{
		Facilities: []domain.Facility{
			{ID: "a", Capacity: domain.Capacity{Seated: n(800)}},
			{ID: "b", Capacity: domain.Capacity{Standing: n(600), Cocktail: n(450)}},
			{ID: "c"},
		},
	}

	assert.Equal(t, 1400, domain.TotalSiteCapacity(site))
	assert.Equal(t, 800, domain.SiteMaxCapacity(site))
}

func TestFormatCapacity(t *testing.T) {
	n := domain.IntPtr
	capacity := domain.Capacity{Cocktail: n(3000), Standing: n(5000)}

	assert.Equal(t, "Standing: 5,000, Cocktail: 3,000", domain.FormatCapacity(capacity, false))
	assert.Equal(t, "وقوف: 5,000، كوكتيل: 3,000", domain.FormatCapacity(capacity, true))
	assert.Equal(t, "", domain.FormatCapacity(domain.Capacity{}, false))
}

func TestCapacityBucket_Contains(t *testing.T) {
	tests := []struct {
		bucket   domain.CapacityBucket
		capacity int
		expected bool
	}{
		{domain.CapacityBucketSmall, 500, true},
		{domain.CapacityBucketSmall, 501, false},
		{domain.CapacityBucketMedium, 501, true},
		{domain.CapacityBucketMedium, 800, true},
		{domain.CapacityBucketMedium, 1000, true},
		{domain.CapacityBucketLarge, 800, false},
		{domain.CapacityBucketLarge, 1001, true},
		{domain.CapacityBucketLarge, 3000, true},
		{domain.CapacityBucketXLarge, 3000, false},
		{domain.CapacityBucketXLarge, 5000, true},
		{domain.CapacityBucketAll, 1, true},
		{domain.CapacityBucket("bogus"), 1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.bucket.Contains(tt.capacity), tt.capacity)
		})
	}
}

func TestFacilityTypeLabel(t *testing.T) {
	assert.Equal(t, "Conference Hall", domain.FacilityTypeLabel(domain.FacilityTypeConferenceHall, false))
	assert.Equal(t, "قاعة مؤتمرات", domain.FacilityTypeLabel(domain.FacilityTypeConferenceHall, true))
	assert.Equal(t, "ballroom", domain.FacilityTypeLabel("ballroom", false))

	for _, ft := range domain.ValidFacilityTypes() {
		assert.NotEqual(t, string(ft), domain.FacilityTypeLabel(ft, true), ft)
	}
}
