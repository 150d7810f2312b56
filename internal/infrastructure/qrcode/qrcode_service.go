// Package qrcode genera los códigos QR de pago.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultSize lado del PNG en píxeles.
const DefaultSize = 256

// QRCodeService genera PNGs con un nivel de corrección de errores fijo.
type QRCodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService crea el servicio. errorCorrectionLevel: L, M, Q o H (por defecto M).
func NewQRCodeService(size int, errorCorrectionLevel string) *QRCodeService {
	if size <= 0 {
		size = DefaultSize
	}
	return &QRCodeService{size: size, level: parseLevel(errorCorrectionLevel)}
}

func parseLevel(s string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePNG codifica content y devuelve la imagen PNG.
func (s *QRCodeService) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qrcode: contenido vacío")
	}
	qr, err := qrcode.New(content, s.level)
	if err != nil {
		return nil, fmt.Errorf("qrcode: crear código: %w", err)
	}
	png, err := qr.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: generar PNG: %w", err)
	}
	return png, nil
}
