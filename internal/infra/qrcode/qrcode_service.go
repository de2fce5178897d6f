package qrcode

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"cardbox/internal/domain/entity"
	"cardbox/internal/domain/service"
)

type qrcodeService struct {
	codec                service.ShareCodec
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(codec service.ShareCodec, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		codec:                codec,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShareQR generates a QR code pointing at the card's public share URL
func (s *qrcodeService) GenerateShareQR(card entity.Card) ([]byte, error) {
	shareURL, err := s.codec.ShareURL(card)
	if err != nil {
		return nil, fmt.Errorf("failed to build share URL: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
