package domain

import (
	"strings"
	"time"
)

// BookingStatus - статус заявки на бронирование
type BookingStatus string

const (
	BookingStatusDraft          BookingStatus = "Draft"
	BookingStatusSubmitted      BookingStatus = "Submitted"
	BookingStatusUnderReview    BookingStatus = "Under Review"
	BookingStatusApproved       BookingStatus = "Approved"
	BookingStatusRejected       BookingStatus = "Rejected"
	BookingStatusPendingPayment BookingStatus = "Pending Payment"
	BookingStatusCompleted      BookingStatus = "Completed"
)

// ValidBookingStatuses returns all valid booking statuses
func ValidBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusDraft,
		BookingStatusSubmitted,
		BookingStatusUnderReview,
		BookingStatusApproved,
		BookingStatusRejected,
		BookingStatusPendingPayment,
		BookingStatusCompleted,
	}
}

var bookingStatusLabels = map[BookingStatus]Text{
	BookingStatusDraft:          {En: "Draft", Ar: "مسودة"},
	BookingStatusSubmitted:      {En: "Submitted", Ar: "تم التقديم"},
	BookingStatusUnderReview:    {En: "Under Review", Ar: "قيد المراجعة"},
	BookingStatusApproved:       {En: "Approved", Ar: "موافق عليه"},
	BookingStatusRejected:       {En: "Rejected", Ar: "مرفوض"},
	BookingStatusPendingPayment: {En: "Pending Payment", Ar: "في انتظار الدفع"},
	BookingStatusCompleted:      {En: "Completed", Ar: "مكتمل"},
}

// Label returns the display label of the status
func (s BookingStatus) Label(isRTL bool) string {
	label, ok := bookingStatusLabels[s]
	if !ok {
		return string(s)
	}
	if isRTL {
		return label.Ar
	}
	return label.En
}

// Slug returns a css-friendly status name
func (s BookingStatus) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// BookingDateLayout - формат даты в записях бронирований
const BookingDateLayout = "2006-01-02"

// Booking - демонстрационная запись бронирования (только чтение)
type Booking struct {
	ID         string        `json:"id"`
	EventName  Text          `json:"event_name"`
	SiteID     string        `json:"site_id"`
	FacilityID string        `json:"facility_id"`
	Date       string        `json:"date"`
	Status     BookingStatus `json:"status"`
}

// Day parses the booking date
func (b Booking) Day() (time.Time, error) {
	return time.Parse(BookingDateLayout, b.Date)
}

// Organizer - единственный профиль организатора
type Organizer struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
}

// SampleOrganizer подставляется во все формы только для чтения
var SampleOrganizer = Organizer{
	Name:         "Sara Al Mansoori",
	Organization: "Future Vision Events",
	Email:        "sara.mansoori@futurevision.ae",
}

// AvailabilityResult - результат упрощённой проверки доступности
type AvailabilityResult struct {
	SiteID     string `json:"site_id"`
	FacilityID string `json:"facility_id,omitempty"`
	Date       string `json:"date"`
	Available  bool   `json:"available"`
	BookingID  string `json:"booking_id,omitempty"`
	EventName  *Text  `json:"event_name,omitempty"`
	Message    string `json:"message"`
}

// ApprovalState - состояние этапа согласования
type ApprovalState string

const (
	ApprovalCompleted  ApprovalState = "completed"
	ApprovalInProgress ApprovalState = "in-progress"
	ApprovalPending    ApprovalState = "pending"
)

// DepartmentApproval - этап согласования отделом
type DepartmentApproval struct {
	ID    string        `json:"id"`
	Name  Text          `json:"name"`
	State ApprovalState `json:"state"`
	Date  string        `json:"date,omitempty"`
}

// BookingDocument - приложенный к заявке документ
type BookingDocument struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Date string `json:"date"`
}

// MessageAuthor - автор сообщения в переписке по заявке
type MessageAuthor string

const (
	MessageFromSystem      MessageAuthor = "system"
	MessageFromCoordinator MessageAuthor = "coordinator"
	MessageFromOrganizer   MessageAuthor = "organizer"
)

// BookingMessage - сообщение в переписке по заявке
type BookingMessage struct {
	Author MessageAuthor `json:"author"`
	Sender Text          `json:"sender"`
	Body   Text          `json:"body"`
	SentAt string        `json:"sent_at"`
}

// BookingDetail - заявка вместе с согласованиями, документами и перепиской
type BookingDetail struct {
	Booking   Booking              `json:"booking"`
	Approvals []DepartmentApproval `json:"approvals"`
	Documents []BookingDocument    `json:"documents"`
	Messages  []BookingMessage     `json:"messages"`
}
