package service

import "cardbox/internal/domain/entity"

// QRCodeService renders a card's shareable URL as a QR code image, the
// physical-world counterpart of the share link.
type QRCodeService interface {
	// GenerateShareQR returns a PNG QR code encoding the card's share URL.
	GenerateShareQR(card entity.Card) ([]byte, error)
}
