package service

import "cardbox/internal/domain/entity"

// ContactFileService renders a card into a standard contact-interchange
// document (vCard) for the "Save Contact" download.
type ContactFileService interface {
	// Render returns the vCard text for the card. Output is deterministic:
	// one field per line in fixed order, conditionally absent lines simply
	// omitted.
	Render(card entity.Card) string

	// Filename returns the download file name for the card's vCard.
	Filename(card entity.Card) string
}
