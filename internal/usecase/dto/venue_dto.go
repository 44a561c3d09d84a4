package dto

import "github.com/venue-booking-portal/internal/domain"

// VenueFilter - параметры фильтра списка территорий.
// Date принимается и возвращается в форму, но в фильтрации не участвует.
type VenueFilter struct {
	Keyword      string `query:"q" json:"q" validate:"max=100"`
	FacilityType string `query:"type" json:"type" validate:"omitempty,oneof=all amphitheatre terrace function-room theatre rooftop outdoor-space conference-hall park garden"`
	Capacity     string `query:"capacity" json:"capacity" validate:"omitempty,oneof=all 0-500 500-1000 1000-3000 3000+"`
	Date         string `query:"date" json:"date" validate:"omitempty,date"`
}

// Normalize fills empty enum filters with "all"
func (f *VenueFilter) Normalize() {
	if f.FacilityType == "" {
		f.FacilityType = "all"
	}
	if f.Capacity == "" {
		f.Capacity = string(domain.CapacityBucketAll)
	}
}

// IsEmpty reports whether the filter keeps the whole catalog
func (f VenueFilter) IsEmpty() bool {
	return f.Keyword == "" &&
		(f.FacilityType == "" || f.FacilityType == "all") &&
		(f.Capacity == "" || f.Capacity == string(domain.CapacityBucketAll))
}

// VenueCard - территория в сетке списка
type VenueCard struct {
	Site          *domain.VenueSite     `json:"site"`
	FacilityTypes []domain.FacilityType `json:"facility_types"`
	MaxCapacity   int                   `json:"max_capacity"`
	TotalCapacity int                   `json:"total_capacity"`
	HasIndoor     bool                  `json:"has_indoor"`
	HasOutdoor    bool                  `json:"has_outdoor"`
}

// VenueListResult - результат фильтрации
type VenueListResult struct {
	Filter VenueFilter `json:"filter"`
	Venues []VenueCard `json:"venues"`
	Total  int         `json:"total"`
}

// FacilityView - площадка на странице территории
type FacilityView struct {
	Facility    *domain.Facility `json:"facility"`
	MaxCapacity int              `json:"max_capacity"`
	BookingURL  string           `json:"booking_url"`
}

// CalendarState - раскраска дня в календаре территории
type CalendarState string

const (
	CalendarAvailable CalendarState = "available"
	CalendarLimited   CalendarState = "limited"
	CalendarBooked    CalendarState = "booked"
)

// CalendarDay - ячейка календаря, Day == 0 для пустых ячеек до первого числа
type CalendarDay struct {
	Day   int           `json:"day"`
	State CalendarState `json:"state,omitempty"`
}

// CalendarMonth - месяц календаря доступности
type CalendarMonth struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}

// VenueDetail - страница территории
type VenueDetail struct {
	Site          *domain.VenueSite `json:"site"`
	Facilities    []FacilityView    `json:"facilities"`
	TotalCapacity int               `json:"total_capacity"`
	MaxCapacity   int               `json:"max_capacity"`
	BookingURL    string            `json:"booking_url"`
	Calendar      CalendarMonth     `json:"calendar"`
}
