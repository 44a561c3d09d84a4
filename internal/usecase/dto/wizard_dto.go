package dto

import (
	"github.com/dustin/go-humanize"

	"github.com/venue-booking-portal/internal/domain"
)

// EventDetailsForm - поля шага 1, живут только внутри шага
type EventDetailsForm struct {
	Venue       string `form:"venue"`
	Title       string `form:"title"`
	EventType   string `form:"event_type" validate:"omitempty,oneof=conference exhibition concert workshop private corporate other"`
	Description string `form:"description"`
	Attendees   int    `form:"attendees" validate:"omitempty,min=0,max=100000"`
	VIP         bool   `form:"vip"`
	VIPDetails  string `form:"vip_details"`
}

// EventTypes - варианты типа мероприятия на шаге 1
var EventTypes = []string{"conference", "exhibition", "concert", "workshop", "private", "corporate", "other"}

// ScheduleForm - поля шага 2
type ScheduleForm struct {
	Venue     string `form:"venue"`
	StartDate string `form:"start_date" validate:"required,date"`
	EndDate   string `form:"end_date" validate:"omitempty,date"`
	MultiDay  bool   `form:"multi_day"`
	StartTime string `form:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime   string `form:"end_time" validate:"omitempty,datetime=15:04"`
}

// ServicesForm - поля шага 3
type ServicesForm struct {
	SecurityRequired bool     `form:"security_required"`
	RiskLevel        string   `form:"risk_level" validate:"omitempty,oneof=low medium high"`
	SecurityNotes    string   `form:"security_notes"`
	Licenses         []string `form:"licenses" validate:"dive,oneof=music food fireworks structures"`
	CateringRequired bool     `form:"catering_required"`
	CateringType     string   `form:"catering_type" validate:"omitempty,oneof=coffee buffet seated"`
	Covers           int      `form:"covers" validate:"omitempty,min=0"`
	AV               []string `form:"av" validate:"dive,oneof=sound projectors led wifi streaming"`
	Logistics        []string `form:"logistics" validate:"dive,oneof=stage seatingTheatre seatingClassroom seatingBanquet booths branding"`
	Notes            string   `form:"notes"`
}

// Варианты услуг на шаге 3
var (
	RiskLevels       = []string{"low", "medium", "high"}
	LicenseOptions   = []string{"music", "food", "fireworks", "structures"}
	CateringTypes    = []string{"coffee", "buffet", "seated"}
	AVOptions        = []string{"sound", "projectors", "led", "wifi", "streaming"}
	LogisticsOptions = []string{"stage", "seatingTheatre", "seatingClassroom", "seatingBanquet", "booths", "branding"}
)

// TimeSlots - слоты времени 06:00-23:00 с шагом в час
func TimeSlots() []string {
	slots := make([]string, 0, 18)
	for h := 6; h <= 23; h++ {
		slots = append(slots, twoDigits(h)+":00")
	}
	return slots
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

// Default schedule slots
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"
)

// UploadedFile - имя и размер "загруженного" файла, содержимое не хранится
type UploadedFile struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

// NewUploadedFile - имя и человекочитаемый размер, "2.4 MB"
func NewUploadedFile(name string, size int64) UploadedFile {
	if size < 0 {
		size = 0
	}
	return UploadedFile{Name: name, Size: humanize.Bytes(uint64(size))}
}

// ReviewForm - поля шага 4
type ReviewForm struct {
	Files         []UploadedFile
	TermsAccepted bool `form:"terms" validate:"required"`
}

// ReviewSummary - данные экрана проверки. Заполняются фиксированным
// примером, введённое на шагах 1-3 сюда не попадает.
type ReviewSummary struct {
	Title       domain.Text      `json:"title"`
	EventType   domain.Text      `json:"event_type"`
	Description domain.Text      `json:"description"`
	Attendees   int              `json:"attendees"`
	Date        domain.Text      `json:"date"`
	Time        string           `json:"time"`
	Services    []domain.Text    `json:"services"`
	Organizer   domain.Organizer `json:"organizer"`
}

// WizardContext - сессия мастера с разрешёнными из каталога сущностями
type WizardContext struct {
	Session  *domain.WizardSession
	Step     domain.WizardStep
	Site     *domain.VenueSite
	Facility *domain.Facility
	BackURL  string
}

// ConfirmationView - экран подтверждения
type ConfirmationView struct {
	Reference string                    `json:"reference"`
	Status    domain.ConfirmationStatus `json:"status"`
	IsDraft   bool                      `json:"is_draft"`
	Label     domain.BookingStatus      `json:"label"`
	QRCode    string                    `json:"qr_code,omitempty"`
	Contact   string                    `json:"contact"`
}
