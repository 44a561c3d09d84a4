package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/domain/repository"
	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
	"github.com/venue-booking-portal/internal/pkg/metrics"
	"github.com/venue-booking-portal/internal/pkg/pdf"
	"github.com/venue-booking-portal/internal/pkg/qrcode"
	"github.com/venue-booking-portal/internal/pkg/telemetry"
	"github.com/venue-booking-portal/internal/pkg/validator"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

const (
	// DefaultScheduleVenue - территория, выбранная на шаге 2 при пустой сессии
	DefaultScheduleVenue = "terra"

	// BookingsContactEmail - адрес команды бронирования
	BookingsContactEmail = "bookings@expocitydubai.ae"
)

// Исходы переходов для метрик
const (
	outcomeAdvanced = "advanced"
	outcomeRejected = "blocked"
	outcomeBack     = "back"
)

// WizardUseCase - переходы мастера бронирования. Между шагами передаётся
// только WizardSession, остальные поля шага проверяются и отбрасываются.
type WizardUseCase struct {
	venueRepo repository.VenueRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewWizardUseCase создает новый экземпляр WizardUseCase
func NewWizardUseCase(venueRepo repository.VenueRepository, logger *zap.Logger) *WizardUseCase {
	return &WizardUseCase{
		venueRepo: venueRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Context разрешает сессию в каталоге для рендеринга шага
func (uc *WizardUseCase) Context(session *domain.WizardSession, step domain.WizardStep) dto.WizardContext {
	wc := dto.WizardContext{
		Session: session,
		Step:    step,
		BackURL: uc.BackURL(step, session),
	}
	if session == nil {
		wc.Session = &domain.WizardSession{}
		return wc
	}
	if site, ok := uc.venueRepo.GetVenueSiteByID(session.VenueID); ok {
		wc.Site = site
		if facility, ok := site.FacilityByID(session.FacilityID); ok {
			wc.Facility = facility
		}
	}
	return wc
}

// SelectedVenue - значение списка территорий на шаге 2
func (uc *WizardUseCase) SelectedVenue(session *domain.WizardSession) string {
	if session.HasVenue() {
		return session.VenueID
	}
	return DefaultScheduleVenue
}

// changeVenue возвращает новую сессию. Площадка сохраняется, только если она
// есть на выбранной территории.
func (uc *WizardUseCase) changeVenue(session *domain.WizardSession, venueID string) *domain.WizardSession {
	next := &domain.WizardSession{}
	if session != nil {
		*next = *session
	}
	if venueID == "" || venueID == next.VenueID {
		return next
	}

	site, ok := uc.venueRepo.GetVenueSiteByID(venueID)
	if !ok {
		uc.logger.Debug("Ignoring unknown venue in wizard form", zap.String("venue_id", venueID))
		return next
	}
	next.VenueID = site.ID
	if _, ok := site.FacilityByID(next.FacilityID); !ok {
		next.FacilityID = ""
	}
	return next
}

// NextFromStep1 переходит на шаг 2
func (uc *WizardUseCase) NextFromStep1(ctx context.Context, session *domain.WizardSession, form dto.EventDetailsForm) string {
	_, span := telemetry.StartSpan(ctx, "wizard.step1.next")
	defer span.End()

	if err := validator.Validate(form); err != nil {
		uc.logger.Debug("Step 1 fields ignored", zap.Any("fields", validator.FieldErrors(err)))
	}
	uc.logger.Debug("Step 1 completed",
		zap.String("title", form.Title),
		zap.String("event_type", form.EventType),
		zap.Int("attendees", form.Attendees),
		zap.Bool("vip", form.VIP),
	)

	next := uc.changeVenue(session, form.Venue)
	metrics.RecordWizardTransition(int(domain.StepEventDetails), outcomeAdvanced)
	return next.URL(domain.StepScheduleVenue.Path())
}

// NextFromStep2 проверяет даты и переходит на шаг 3. При ошибке возвращает
// сессию с учётом выбранной территории, чтобы шаг отрисовался заново.
func (uc *WizardUseCase) NextFromStep2(
	ctx context.Context,
	session *domain.WizardSession,
	form dto.ScheduleForm,
) (string, *domain.WizardSession, error) {
	ctx, span := telemetry.StartSpan(ctx, "wizard.step2.next",
		attribute.String("start_date", form.StartDate),
		attribute.Bool("multi_day", form.MultiDay),
	)
	defer span.End()

	next := uc.changeVenue(session, form.Venue)

	if err := validateSchedule(form); err != nil {
		telemetry.SetSpanError(ctx, err)
		metrics.RecordWizardTransition(int(domain.StepScheduleVenue), outcomeRejected)
		uc.logger.Debug("Step 2 rejected", zap.Error(err))
		return "", next, err
	}

	uc.logger.Debug("Step 2 completed",
		zap.String("start_date", form.StartDate),
		zap.String("end_date", form.EndDate),
		zap.String("start_time", form.StartTime),
		zap.String("end_time", form.EndTime),
	)
	metrics.RecordWizardTransition(int(domain.StepScheduleVenue), outcomeAdvanced)
	return next.URL(domain.StepServices.Path()), next, nil
}

func validateSchedule(form dto.ScheduleForm) error {
	if form.StartDate == "" {
		return errors.ErrStartDateRequired
	}
	if !form.MultiDay {
		// дата окончания учитывается только для многодневных мероприятий
		form.EndDate = ""
	} else if form.EndDate == "" {
		return errors.ErrEndDateRequired
	}
	if err := validator.Validate(form); err != nil {
		switch {
		case validator.HasFieldError(err, "StartDate"):
			return errors.ErrInvalidDate.WithDetails(map[string]interface{}{"start_date": form.StartDate})
		case validator.HasFieldError(err, "EndDate"):
			return errors.ErrInvalidDate.WithDetails(map[string]interface{}{"end_date": form.EndDate})
		default:
			return errors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
		}
	}

	if form.MultiDay {
		start, _ := time.Parse(domain.BookingDateLayout, form.StartDate)
		end, _ := time.Parse(domain.BookingDateLayout, form.EndDate)
		if end.Before(start) {
			return errors.ErrEndBeforeStart
		}
	}
	return nil
}

// NextFromStep3 переходит на шаг 4
func (uc *WizardUseCase) NextFromStep3(ctx context.Context, session *domain.WizardSession, form dto.ServicesForm) string {
	_, span := telemetry.StartSpan(ctx, "wizard.step3.next")
	defer span.End()

	if err := validator.Validate(form); err != nil {
		uc.logger.Debug("Step 3 fields ignored", zap.Any("fields", validator.FieldErrors(err)))
	}
	uc.logger.Debug("Step 3 completed",
		zap.Bool("security", form.SecurityRequired),
		zap.String("risk_level", form.RiskLevel),
		zap.Strings("licenses", form.Licenses),
		zap.Bool("catering", form.CateringRequired),
		zap.Strings("av", form.AV),
		zap.Strings("logistics", form.Logistics),
	)

	metrics.RecordWizardTransition(int(domain.StepServices), outcomeAdvanced)
	return session.URL(domain.StepDocumentsReview.Path())
}

// Submit требует согласия с условиями. Хранилище заявок не меняется.
func (uc *WizardUseCase) Submit(ctx context.Context, session *domain.WizardSession, form dto.ReviewForm) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "wizard.submit", attribute.Int("files", len(form.Files)))
	defer span.End()

	if err := validator.Validate(form); err != nil {
		telemetry.SetSpanError(ctx, errors.ErrTermsNotAccepted)
		metrics.RecordWizardTransition(int(domain.StepDocumentsReview), outcomeRejected)
		uc.logger.Debug("Submit rejected, terms not accepted")
		return "", errors.ErrTermsNotAccepted
	}

	uc.logger.Info("Booking request submitted",
		zap.String("reference", domain.DefaultBookingReference),
		zap.String("venue_id", session.Query().Get(domain.QueryVenue)),
		zap.String("facility_id", session.Query().Get(domain.QueryFacility)),
		zap.Int("files", len(form.Files)),
	)
	metrics.RecordWizardTransition(int(domain.StepDocumentsReview), outcomeAdvanced)
	metrics.RecordBookingRequest(string(domain.ConfirmationSubmitted))
	return domain.ConfirmationURL(domain.DefaultBookingReference, domain.ConfirmationSubmitted), nil
}

// SaveDraft сохраняет черновик без проверки условий
func (uc *WizardUseCase) SaveDraft(ctx context.Context, session *domain.WizardSession) string {
	_, span := telemetry.StartSpan(ctx, "wizard.save_draft")
	defer span.End()

	uc.logger.Info("Booking draft saved",
		zap.String("reference", domain.DefaultBookingReference),
		zap.String("venue_id", session.Query().Get(domain.QueryVenue)),
	)
	metrics.RecordBookingRequest(string(domain.ConfirmationDraft))
	return domain.ConfirmationURL(domain.DefaultBookingReference, domain.ConfirmationDraft)
}

// BackURL - шаг 1 ведёт на карточку территории, остальные на предыдущий шаг
func (uc *WizardUseCase) BackURL(step domain.WizardStep, session *domain.WizardSession) string {
	if step <= domain.StepEventDetails {
		if session.HasVenue() {
			return "/venues/" + session.VenueID
		}
		return "/venues"
	}
	return session.URL((step - 1).Path())
}

// Back фиксирует возврат на предыдущий шаг
func (uc *WizardUseCase) Back(step domain.WizardStep, session *domain.WizardSession) string {
	metrics.RecordWizardTransition(int(step), outcomeBack)
	return uc.BackURL(step, session)
}

// Review - фиксированный пример для экрана проверки, ввод шагов 1-3 не используется
func (uc *WizardUseCase) Review() dto.ReviewSummary {
	return dto.ReviewSummary{
		Title:     domain.Text{En: "Innovation Summit 2025", Ar: "مؤتمر الابتكار 2025"},
		EventType: domain.Text{En: "Conference", Ar: "مؤتمر"},
		Description: domain.Text{
			En: "Annual conference bringing together industry leaders to discuss the latest innovations in technology and sustainability.",
			Ar: "مؤتمر سنوي يجمع قادة الصناعة لمناقشة أحدث الابتكارات في مجال التكنولوجيا والاستدامة.",
		},
		Attendees: 350,
		Date:      domain.Text{En: "15 April 2025", Ar: "15 أبريل 2025"},
		Time:      "09:00 - 18:00",
		Services: []domain.Text{
			{En: "Security: Medium risk", Ar: "الأمن: مخاطر متوسطة"},
			{En: "Catering: Buffet (350 covers)", Ar: "الضيافة: بوفيه (350 شخص)"},
			{En: "AV: Sound system, LED screen, Projectors", Ar: "الصوتيات والمرئيات: نظام صوت، شاشة LED، أجهزة عرض"},
			{En: "Logistics: Stage, Theatre seating", Ar: "الخدمات اللوجستية: منصة، جلوس مسرحي"},
		},
		Organizer: domain.SampleOrganizer,
	}
}

// DemoDocuments - файлы, которые "загружаются" при пустой форме загрузки
func (uc *WizardUseCase) DemoDocuments() []dto.UploadedFile {
	return []dto.UploadedFile{
		{Name: "event_proposal_v2.pdf", Size: "2.4 MB"},
		{Name: "floor_plan_draft.dwg", Size: "1.8 MB"},
		{Name: "company_trade_license.pdf", Size: "890 KB"},
	}
}

// AddDocuments дописывает загруженные файлы. Пустая загрузка подставляет
// демонстрационные файлы, которых ещё нет в списке.
func (uc *WizardUseCase) AddDocuments(current, uploaded []dto.UploadedFile) []dto.UploadedFile {
	if len(uploaded) == 0 {
		uploaded = uc.DemoDocuments()
	}
	seen := make(map[string]bool, len(current))
	out := make([]dto.UploadedFile, 0, len(current)+len(uploaded))
	for _, f := range current {
		seen[f.Name] = true
		out = append(out, f)
	}
	for _, f := range uploaded {
		if f.Name == "" || seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		out = append(out, f)
	}
	uc.logger.Debug("Documents attached", zap.Int("count", len(out)))
	return out
}

// RemoveDocument убирает файл по индексу, неверный индекс ничего не меняет
func RemoveDocument(files []dto.UploadedFile, index int) []dto.UploadedFile {
	if index < 0 || index >= len(files) {
		return files
	}
	out := make([]dto.UploadedFile, 0, len(files)-1)
	out = append(out, files[:index]...)
	return append(out, files[index+1:]...)
}

// Confirmation собирает экран подтверждения. Метка статуса зависит только от status.
func (uc *WizardUseCase) Confirmation(ctx context.Context, ref, status string) dto.ConfirmationView {
	_, span := telemetry.StartSpan(ctx, "wizard.confirmation")
	defer span.End()

	if ref == "" {
		ref = domain.DefaultBookingReference
	}
	parsed := domain.ParseConfirmationStatus(status)

	view := dto.ConfirmationView{
		Reference: ref,
		Status:    parsed,
		IsDraft:   parsed == domain.ConfirmationDraft,
		Label:     domain.BookingStatusSubmitted,
		Contact:   BookingsContactEmail,
	}
	if view.IsDraft {
		view.Label = domain.BookingStatusDraft
	}

	qr, err := qrcode.DataURI(ref, qrcode.DefaultSize)
	if err != nil {
		uc.logger.Warn("Failed to render confirmation QR code", zap.String("reference", ref), zap.Error(err))
	} else {
		view.QRCode = qr
	}

	return view
}

// ConfirmationPDF - слип подтверждения на английском
func (uc *WizardUseCase) ConfirmationPDF(
	ctx context.Context,
	ref, status string,
	session *domain.WizardSession,
) ([]byte, error) {
	ctx, span := telemetry.StartSpan(ctx, "wizard.confirmation_pdf")
	defer span.End()

	view := uc.Confirmation(ctx, ref, status)
	locale := i18n.NewLocale(domain.LanguageEN)

	data := pdf.ConfirmationData{
		Reference:      view.Reference,
		StatusLabel:    view.Label.Label(false),
		Title:          locale.T("confirmation.submittedTitle"),
		Description:    locale.T("confirmation.submittedDesc"),
		OrganizerName:  domain.SampleOrganizer.Name,
		Organization:   domain.SampleOrganizer.Organization,
		OrganizerEmail: domain.SampleOrganizer.Email,
		ContactEmail:   view.Contact,
		IssuedAt:       uc.now(),
	}
	if view.IsDraft {
		data.Title = locale.T("confirmation.draftTitle")
		data.Description = locale.T("confirmation.draftDesc")
	} else {
		data.NextSteps = []string{
			locale.T("confirmation.next1"),
			locale.T("confirmation.next2"),
			locale.T("confirmation.next3"),
		}
	}

	wc := uc.Context(session, domain.StepDocumentsReview)
	if wc.Site != nil {
		data.VenueName = wc.Site.Name.En
	}
	if wc.Facility != nil {
		data.FacilityName = wc.Facility.Name.En
	}

	png, err := qrcode.PNG(view.Reference, qrcode.DefaultSize)
	if err != nil {
		uc.logger.Warn("Failed to render QR code for PDF", zap.Error(err))
	} else {
		data.QRCodePNG = png
	}

	out, err := pdf.GenerateConfirmationPDF(data)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		uc.logger.Error("Failed to generate confirmation PDF", zap.String("reference", view.Reference), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return out, nil
}

// TermsTitle - заголовок условий бронирования
var TermsTitle = domain.Text{
	En: "Expo City Dubai Venue Booking Terms and Conditions",
	Ar: "شروط وأحكام حجز الأماكن في إكسبو سيتي دبي",
}

var termsAndConditions = []domain.Text{
	{
		En: "All bookings are accepted subject to availability and approval by the Expo City Dubai Venue Management team.",
		Ar: "يتم قبول جميع الحجوزات مع مراعاة التوافر والموافقة من قبل فريق إدارة الأماكن في إكسبو سيتي دبي.",
	},
	{
		En: "All required documents must be submitted at least 30 days prior to the event date.",
		Ar: "يجب تقديم جميع المستندات المطلوبة قبل 30 يومًا على الأقل من تاريخ الفعالية.",
	},
	{
		En: "Use of the venue is subject to all applicable Expo City Dubai regulations and guidelines.",
		Ar: "يخضع استخدام المكان لجميع اللوائح والمبادئ التوجيهية المعمول بها في إكسبو سيتي دبي.",
	},
	{
		En: "The organizer is responsible for obtaining all necessary permits and licenses for the event.",
		Ar: "يتحمل المنظم مسؤولية الحصول على جميع التصاريح والتراخيص اللازمة للفعالية.",
	},
	{
		En: "Additional charges may apply for supplementary services and special requirements.",
		Ar: "قد يتم تطبيق رسوم إضافية للخدمات الإضافية والمتطلبات الخاصة.",
	},
	{
		En: "Cancellation policy is subject to the terms specified in the final booking agreement.",
		Ar: "تخضع سياسة الإلغاء للبنود المحددة في اتفاقية الحجز النهائية.",
	},
	{
		En: "Expo City Dubai reserves the right to modify or cancel any booking for operational or security reasons.",
		Ar: "يحتفظ إكسبو سيتي دبي بالحق في تعديل أو إلغاء أي حجز لأسباب تشغيلية أو أمنية.",
	},
	{
		En: "The organizer agrees to comply with all health and safety standards during the event.",
		Ar: "يوافق المنظم على الالتزام بجميع معايير الصحة والسلامة أثناء الفعالية.",
	},
	{
		En: "Prior approval must be obtained for any modifications to venue design or infrastructure.",
		Ar: "يجب الحصول على موافقة مسبقة لأي تعديلات على تصميم المكان أو البنية التحتية.",
	},
	{
		En: "These terms and conditions are governed by the laws applicable in the United Arab Emirates.",
		Ar: "تخضع هذه الشروط والأحكام للقوانين المعمول بها في دولة الإمارات العربية المتحدة.",
	},
}

// Terms - пункты условий бронирования по порядку
func (uc *WizardUseCase) Terms() []domain.Text {
	return termsAndConditions
}
