package handler

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/view"
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/utils"
	"github.com/venue-booking-portal/internal/usecase"
	"github.com/venue-booking-portal/internal/usecase/dto"
)

// Значения кнопок формы мастера
const (
	actionBack   = "back"
	actionNext   = "next"
	actionCheck  = "check"
	actionUpload = "upload"
	actionRemove = "remove:"
	actionDraft  = "draft"
	actionSubmit = "submit"
)

var wizardSteps = []domain.WizardStep{
	domain.StepEventDetails,
	domain.StepScheduleVenue,
	domain.StepServices,
	domain.StepDocumentsReview,
}

// WizardData - данные шаблонов шагов мастера
type WizardData struct {
	Ctx       dto.WizardContext
	Steps     []domain.WizardStep
	Action    string
	Sites     []domain.VenueSite
	Organizer domain.Organizer

	Event      dto.EventDetailsForm
	EventTypes []string

	Schedule      dto.ScheduleForm
	SelectedVenue string
	TimeSlots     []string
	Availability  *domain.AvailabilityResult

	Services         dto.ServicesForm
	RiskLevels       []string
	LicenseOptions   []string
	CateringTypes    []string
	AVOptions        []string
	LogisticsOptions []string

	Files      []dto.UploadedFile
	Review     dto.ReviewSummary
	TermsTitle domain.Text
	Terms      []domain.Text
}

// ConfirmationData - данные экрана подтверждения
type ConfirmationData struct {
	View   dto.ConfirmationView
	QRCode template.URL
	PDFURL string
}

// WizardHandler - четыре шага мастера бронирования и подтверждение
type WizardHandler struct {
	wizardUC  *usecase.WizardUseCase
	catalogUC *usecase.CatalogUseCase
	bookingUC *usecase.BookingUseCase
	renderer  *view.Renderer
	logger    *zap.Logger
}

// NewWizardHandler создает новый экземпляр WizardHandler
func NewWizardHandler(
	wizardUC *usecase.WizardUseCase,
	catalogUC *usecase.CatalogUseCase,
	bookingUC *usecase.BookingUseCase,
	renderer *view.Renderer,
	logger *zap.Logger,
) *WizardHandler {
	return &WizardHandler{
		wizardUC:  wizardUC,
		catalogUC: catalogUC,
		bookingUC: bookingUC,
		renderer:  renderer,
		logger:    logger,
	}
}

func (h *WizardHandler) data(session *domain.WizardSession, step domain.WizardStep) WizardData {
	return WizardData{
		Ctx:       h.wizardUC.Context(session, step),
		Steps:     wizardSteps,
		Action:    session.URL(step.Path()),
		Sites:     h.catalogUC.ListSites(),
		Organizer: domain.SampleOrganizer,
	}
}

func (h *WizardHandler) render(c *fiber.Ctx, status int, step domain.WizardStep, data WizardData, toast string) error {
	return h.renderer.Render(c, status, "wizard_step"+strconv.Itoa(int(step)), view.Page{
		Title: "wizard.title",
		Nav:   "booking",
		Toast: toast,
		Data:  data,
	})
}

// Step1 - сведения о мероприятии
func (h *WizardHandler) Step1(c *fiber.Ctx) error {
	return h.renderStep1(c, sessionFromRequest(c), dto.EventDetailsForm{EventType: dto.EventTypes[0]})
}

func (h *WizardHandler) renderStep1(c *fiber.Ctx, session *domain.WizardSession, form dto.EventDetailsForm) error {
	data := h.data(session, domain.StepEventDetails)
	data.Event = form
	data.EventTypes = dto.EventTypes
	return h.render(c, fiber.StatusOK, domain.StepEventDetails, data, "")
}

// SubmitStep1 - поля шага не блокируют переход, сохраняется только выбор территории
func (h *WizardHandler) SubmitStep1(c *fiber.Ctx) error {
	session := sessionFromRequest(c)
	if c.FormValue("action") == actionBack {
		return c.Redirect(h.wizardUC.Back(domain.StepEventDetails, session), fiber.StatusSeeOther)
	}

	var form dto.EventDetailsForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Debug("Failed to parse step 1 form", zap.Error(err))
	}
	return c.Redirect(h.wizardUC.NextFromStep1(c.UserContext(), session, form), fiber.StatusSeeOther)
}

// Step2 - дата, время и территория
func (h *WizardHandler) Step2(c *fiber.Ctx) error {
	session := sessionFromRequest(c)
	form := dto.ScheduleForm{
		Venue:     h.wizardUC.SelectedVenue(session),
		StartTime: dto.DefaultStartTime,
		EndTime:   dto.DefaultEndTime,
	}
	return h.renderStep2(c, fiber.StatusOK, session, form, nil, "")
}

func (h *WizardHandler) renderStep2(
	c *fiber.Ctx,
	status int,
	session *domain.WizardSession,
	form dto.ScheduleForm,
	availability *domain.AvailabilityResult,
	toast string,
) error {
	data := h.data(session, domain.StepScheduleVenue)
	data.Schedule = form
	data.SelectedVenue = form.Venue
	if data.SelectedVenue == "" {
		data.SelectedVenue = h.wizardUC.SelectedVenue(session)
	}
	data.TimeSlots = dto.TimeSlots()
	data.Availability = availability
	return h.render(c, status, domain.StepScheduleVenue, data, toast)
}

// SubmitStep2 - проверка доступности или переход на шаг 3
func (h *WizardHandler) SubmitStep2(c *fiber.Ctx) error {
	session := sessionFromRequest(c)

	var form dto.ScheduleForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Debug("Failed to parse step 2 form", zap.Error(err))
	}

	switch c.FormValue("action") {
	case actionBack:
		return c.Redirect(h.wizardUC.Back(domain.StepScheduleVenue, session), fiber.StatusSeeOther)
	case actionCheck:
		return h.checkAvailability(c, session, form)
	}

	target, next, err := h.wizardUC.NextFromStep2(c.UserContext(), session, form)
	if err != nil {
		var hint *domain.AvailabilityResult
		if form.StartDate != "" {
			hint, _ = h.availability(c, next, form)
		}
		return h.renderStep2(c, fiber.StatusUnprocessableEntity, next, form, hint, toastMessage(h.renderer.Locale(), err))
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

func (h *WizardHandler) checkAvailability(c *fiber.Ctx, session *domain.WizardSession, form dto.ScheduleForm) error {
	result, err := h.availability(c, session, form)
	if err != nil {
		return h.renderStep2(c, fiber.StatusUnprocessableEntity, session, form, nil, toastMessage(h.renderer.Locale(), err))
	}
	return h.renderStep2(c, fiber.StatusOK, session, form, result, "")
}

// availability - упрощённая проверка для выбранной на шаге 2 территории и даты начала
func (h *WizardHandler) availability(c *fiber.Ctx, session *domain.WizardSession, form dto.ScheduleForm) (*domain.AvailabilityResult, error) {
	venueID := form.Venue
	if venueID == "" {
		venueID = h.wizardUC.SelectedVenue(session)
	}
	req := dto.AvailabilityRequest{VenueID: venueID, Date: form.StartDate}
	if venueID == session.VenueID {
		req.FacilityID = session.FacilityID
	}
	return h.bookingUC.CheckAvailability(c.UserContext(), h.renderer.Locale(), req)
}

// Step3 - дополнительные услуги
func (h *WizardHandler) Step3(c *fiber.Ctx) error {
	data := h.data(sessionFromRequest(c), domain.StepServices)
	data.RiskLevels = dto.RiskLevels
	data.LicenseOptions = dto.LicenseOptions
	data.CateringTypes = dto.CateringTypes
	data.AVOptions = dto.AVOptions
	data.LogisticsOptions = dto.LogisticsOptions
	return h.render(c, fiber.StatusOK, domain.StepServices, data, "")
}

// SubmitStep3 переходит на шаг 4 без проверок
func (h *WizardHandler) SubmitStep3(c *fiber.Ctx) error {
	session := sessionFromRequest(c)
	if c.FormValue("action") == actionBack {
		return c.Redirect(h.wizardUC.Back(domain.StepServices, session), fiber.StatusSeeOther)
	}

	var form dto.ServicesForm
	if err := c.BodyParser(&form); err != nil {
		h.logger.Debug("Failed to parse step 3 form", zap.Error(err))
	}
	return c.Redirect(h.wizardUC.NextFromStep3(c.UserContext(), session, form), fiber.StatusSeeOther)
}

// Step4 - документы, проверка и условия
func (h *WizardHandler) Step4(c *fiber.Ctx) error {
	return h.renderStep4(c, fiber.StatusOK, sessionFromRequest(c), nil, "")
}

func (h *WizardHandler) renderStep4(c *fiber.Ctx, status int, session *domain.WizardSession, files []dto.UploadedFile, toast string) error {
	data := h.data(session, domain.StepDocumentsReview)
	data.Files = files
	data.Review = h.wizardUC.Review()
	data.TermsTitle = usecase.TermsTitle
	data.Terms = h.wizardUC.Terms()
	return h.render(c, status, domain.StepDocumentsReview, data, toast)
}

// SubmitStep4 - загрузка и удаление файлов, черновик, отправка
func (h *WizardHandler) SubmitStep4(c *fiber.Ctx) error {
	session := sessionFromRequest(c)
	files := attachedFiles(c)
	action := c.FormValue("action")

	switch {
	case action == actionBack:
		return c.Redirect(h.wizardUC.Back(domain.StepDocumentsReview, session), fiber.StatusSeeOther)
	case action == actionUpload:
		files = h.wizardUC.AddDocuments(files, uploadedFiles(c))
		return h.renderStep4(c, fiber.StatusOK, session, files, "")
	case strings.HasPrefix(action, actionRemove):
		index, err := strconv.Atoi(strings.TrimPrefix(action, actionRemove))
		if err == nil {
			files = usecase.RemoveDocument(files, index)
		}
		return h.renderStep4(c, fiber.StatusOK, session, files, "")
	case action == actionDraft:
		return c.Redirect(h.wizardUC.SaveDraft(c.UserContext(), session), fiber.StatusSeeOther)
	}

	form := dto.ReviewForm{
		Files:         files,
		TermsAccepted: c.FormValue("terms") == "true" || c.FormValue("terms") == "on",
	}
	target, err := h.wizardUC.Submit(c.UserContext(), session, form)
	if err != nil {
		return h.renderStep4(c, fiber.StatusUnprocessableEntity, session, files, toastMessage(h.renderer.Locale(), err))
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// Confirmation - экран подтверждения, метка зависит только от status
func (h *WizardHandler) Confirmation(c *fiber.Ctx) error {
	q := queryValues(c)
	confirmation := h.wizardUC.Confirmation(c.UserContext(), q.Get(domain.QueryRef), q.Get(domain.QueryStatus))

	pdfQuery := domain.SessionFromQuery(q).Query()
	pdfQuery.Set(domain.QueryRef, confirmation.Reference)
	pdfQuery.Set(domain.QueryStatus, string(confirmation.Status))

	return h.renderer.Render(c, fiber.StatusOK, "confirmation", view.Page{
		Title: "wizard.title",
		Nav:   "booking",
		Data: ConfirmationData{
			View: confirmation,
			// data URI с PNG, собранный сервером
			QRCode: template.URL(confirmation.QRCode),
			PDFURL: utils.WithQuery("/booking/confirmation/pdf", pdfQuery),
		},
	})
}

// ConfirmationPDF - слип подтверждения для скачивания
func (h *WizardHandler) ConfirmationPDF(c *fiber.Ctx) error {
	q := queryValues(c)
	out, err := h.wizardUC.ConfirmationPDF(c.UserContext(), q.Get(domain.QueryRef), q.Get(domain.QueryStatus), domain.SessionFromQuery(q))
	if err != nil {
		return err
	}

	ref := q.Get(domain.QueryRef)
	if ref == "" {
		ref = domain.DefaultBookingReference
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+url.PathEscape(ref)+`.pdf"`)
	return c.Send(out)
}

// attachedFiles - уже прикреплённые файлы из скрытых полей формы
func attachedFiles(c *fiber.Ctx) []dto.UploadedFile {
	names := formValues(c, "file_name")
	sizes := formValues(c, "file_size")
	files := make([]dto.UploadedFile, 0, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		f := dto.UploadedFile{Name: name}
		if i < len(sizes) {
			f.Size = sizes[i]
		}
		files = append(files, f)
	}
	return files
}

// uploadedFiles - имена и размеры файлов из multipart, содержимое отбрасывается
func uploadedFiles(c *fiber.Ctx) []dto.UploadedFile {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	headers := form.File["documents"]
	files := make([]dto.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" {
			continue
		}
		files = append(files, dto.NewUploadedFile(fh.Filename, fh.Size))
	}
	return files
}

// formValues - все значения поля формы, multipart или urlencoded
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[key]
	}
	raw := c.Request().PostArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}
