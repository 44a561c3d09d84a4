package domain

// FacilityType - тип площадки внутри территории
type FacilityType string

const (
	FacilityTypeAmphitheatre   FacilityType = "amphitheatre"
	FacilityTypeTerrace        FacilityType = "terrace"
	FacilityTypeFunctionRoom   FacilityType = "function-room"
	FacilityTypeTheatre        FacilityType = "theatre"
	FacilityTypeRooftop        FacilityType = "rooftop"
	FacilityTypeOutdoorSpace   FacilityType = "outdoor-space"
	FacilityTypeConferenceHall FacilityType = "conference-hall"
	FacilityTypePark           FacilityType = "park"
	FacilityTypeGarden         FacilityType = "garden"
)

// ValidFacilityTypes returns all valid facility types in display order
func ValidFacilityTypes() []FacilityType {
	return []FacilityType{
		FacilityTypeAmphitheatre,
		FacilityTypeTerrace,
		FacilityTypeFunctionRoom,
		FacilityTypeTheatre,
		FacilityTypeRooftop,
		FacilityTypeOutdoorSpace,
		FacilityTypeConferenceHall,
		FacilityTypePark,
		FacilityTypeGarden,
	}
}

// IsValidFacilityType checks if the facility type is valid
func IsValidFacilityType(t string) bool {
	for _, ft := range ValidFacilityTypes() {
		if string(ft) == t {
			return true
		}
	}
	return false
}

// ParseFacilityType parses string to FacilityType
func ParseFacilityType(s string) (FacilityType, bool) {
	if IsValidFacilityType(s) {
		return FacilityType(s), true
	}
	return "", false
}

var facilityTypeLabels = map[FacilityType]Text{
	FacilityTypeAmphitheatre:   {En: "Amphitheatre", Ar: "مدرج"},
	FacilityTypeTerrace:        {En: "Terrace", Ar: "تراس"},
	FacilityTypeFunctionRoom:   {En: "Function Room", Ar: "قاعة مناسبات"},
	FacilityTypeTheatre:        {En: "Theatre", Ar: "مسرح"},
	FacilityTypeRooftop:        {En: "Rooftop", Ar: "سطح"},
	FacilityTypeOutdoorSpace:   {En: "Outdoor Space", Ar: "مساحة خارجية"},
	FacilityTypeConferenceHall: {En: "Conference Hall", Ar: "قاعة مؤتمرات"},
	FacilityTypePark:           {En: "Park", Ar: "حديقة عامة"},
	FacilityTypeGarden:         {En: "Garden", Ar: "حديقة"},
}

// FacilityTypeLabel - подпись типа площадки на нужном языке.
// Неизвестный тип возвращается как есть.
func FacilityTypeLabel(t FacilityType, isRTL bool) string {
	label, ok := facilityTypeLabels[t]
	if !ok {
		return string(t)
	}
	if isRTL {
		return label.Ar
	}
	return label.En
}

// Capacity - вместимость по конфигурациям рассадки, отсутствующее измерение = nil
type Capacity struct {
	Standing *int `json:"standing,omitempty"`
	Seated   *int `json:"seated,omitempty"`
	Banquet  *int `json:"banquet,omitempty"`
	Cocktail *int `json:"cocktail,omitempty"`
}

// Facility - бронируемое пространство внутри территории
type Facility struct {
	ID          string       `json:"id"`
	Name        Text         `json:"name"`
	Type        FacilityType `json:"type"`
	Indoor      bool         `json:"indoor"`
	Capacity    Capacity     `json:"capacity"`
	Description Text         `json:"description"`
}

// VenueSite - территория, владеющая своими площадками
type VenueSite struct {
	ID          string     `json:"id"`
	Name        Text       `json:"name"`
	Description Text       `json:"description"`
	Image       string     `json:"image"`
	Facilities  []Facility `json:"facilities"`
	EventTags   []Text     `json:"event_tags"`
}

// FacilityByID looks up a facility owned by this site
func (s *VenueSite) FacilityByID(facilityID string) (*Facility, bool) {
	for i := range s.Facilities {
		if s.Facilities[i].ID == facilityID {
			return &s.Facilities[i], true
		}
	}
	return nil, false
}

// SiteFacility - пара территория/площадка для плоских списков
type SiteFacility struct {
	Site     *VenueSite `json:"site"`
	Facility *Facility  `json:"facility"`
}
