package qrcode

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize - размер QR в пикселях для страницы подтверждения
const DefaultSize = 200

// PNG encodes text as a QR code with medium error correction
func PNG(text string, size int) ([]byte, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pngBytes, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR to PNG: %w", err)
	}
	return pngBytes, nil
}

// DataURI returns "data:image/png;base64,..." ready for an <img src>
func DataURI(text string, size int) (string, error) {
	pngBytes, err := PNG(text, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}
