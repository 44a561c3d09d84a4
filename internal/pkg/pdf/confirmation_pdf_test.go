package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venue-booking-portal/internal/pkg/pdf"
	"github.com/venue-booking-portal/internal/pkg/qrcode"
)

func TestGenerateConfirmationPDF(t *testing.T) {
	qr, err := qrcode.PNG("EVD-2025-003", 128)
	require.NoError(t, err)

	out, err := pdf.GenerateConfirmationPDF(pdf.ConfirmationData{
		Reference:     "EVD-2025-003",
		StatusLabel:   "Submitted",
		Title:         "Booking Submitted Successfully!",
		OrganizerName: "Sara Al Mansoori",
		VenueName:     "Terra - The Sustainability Pavilion",
		NextSteps:     []string{"Review within 3-5 business days."},
		ContactEmail:  "bookings@expocitydubai.ae",
		IssuedAt:      time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC),
		QRCodePNG:     qr,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateConfirmationPDF_WithoutQRCode(t *testing.T) {
	out, err := pdf.GenerateConfirmationPDF(pdf.ConfirmationData{
		Reference:   "EVD-2025-003",
		StatusLabel: "Draft",
		Title:       "Draft Saved",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
