package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ConfirmationData - содержимое PDF подтверждения заявки.
// Встроенные шрифты gofpdf не содержат арабских глифов, поэтому слип всегда на английском.
type ConfirmationData struct {
	Reference      string
	StatusLabel    string
	Title          string
	Description    string
	OrganizerName  string
	Organization   string
	OrganizerEmail string
	VenueName      string
	FacilityName   string
	NextSteps      []string
	ContactEmail   string
	IssuedAt       time.Time
	QRCodePNG      []byte
}

// GenerateConfirmationPDF renders a single-page A4 confirmation slip
func GenerateConfirmationPDF(data ConfirmationData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking "+data.Reference, true)
	pdf.AddPage()
	// UTF-8 -> cp1252 для встроенных шрифтов
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(data.Title), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, 6, tr(data.Description), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if len(data.QRCodePNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		name := "qr_" + data.Reference
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data.QRCodePNG))
		size := 50.0
		pdf.ImageOptions(name, (210-size)/2, pdf.GetY(), size, size, false, opts, 0, "")
		pdf.Ln(size + 4)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Booking Reference Number", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, data.Reference, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr("Status: "+data.StatusLabel), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(6)

	rows := [][2]string{
		{"Organizer", data.OrganizerName},
		{"Organization", data.Organization},
		{"Email", data.OrganizerEmail},
		{"Venue", data.VenueName},
		{"Facility", data.FacilityName},
		{"Issued", data.IssuedAt.Format("2 January 2006 15:04")},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(45, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}

	if len(data.NextSteps) > 0 {
		pdf.Ln(6)
		pdf.SetX(20)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "What's Next", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for i, step := range data.NextSteps {
			pdf.SetX(20)
			pdf.MultiCell(170, 6, tr(fmt.Sprintf("%d. %s", i+1, step)), "", "L", false)
		}
	}

	if data.ContactEmail != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.CellFormat(0, 6, "For inquiries contact "+data.ContactEmail, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render confirmation PDF: %w", err)
	}
	return buf.Bytes(), nil
}
