// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "cardbox/internal/domain/entity"

// ShareCodec serializes a single card into a URL-safe token and back.
// The encoding is lossy by design: the three image slots are stripped so
// the resulting URL stays small enough to share; everything else survives
// the round trip unchanged.
type ShareCodec interface {
	// Encode produces a URL-safe token for the card, with the image
	// fields absent from the serialized form (not empty strings, so the
	// decoder's defaulting restores the no-image state).
	Encode(card entity.Card) (string, error)

	// Decode recovers a card from a token, running the result through
	// the defaulting merge. A malformed token yields an error the caller
	// treats as "no shareable data", never as a fatal condition.
	Decode(token string) (entity.Card, error)

	// ShareURL builds the full public URL embedding the card's token.
	ShareURL(card entity.Card) (string, error)
}
