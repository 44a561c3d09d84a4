package domain

import "time"

// CatalogStatistics - агрегированная статистика каталога и заявок
type CatalogStatistics struct {
	TotalSites        int                    `json:"total_sites"`
	TotalFacilities   int                    `json:"total_facilities"`
	IndoorFacilities  int                    `json:"indoor_facilities"`
	OutdoorFacilities int                    `json:"outdoor_facilities"`
	TotalCapacity     int                    `json:"total_capacity"`
	ByFacilityType    map[FacilityType]int   `json:"by_facility_type"`
	ByCapacityBucket  map[CapacityBucket]int `json:"by_capacity_bucket"`
	TotalBookings     int                    `json:"total_bookings"`
	BookingsByStatus  map[BookingStatus]int  `json:"bookings_by_status"`
	LastUpdated       time.Time              `json:"last_updated"`
}
