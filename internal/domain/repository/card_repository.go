// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cardbox/internal/domain/entity"
)

// CardRepository persists the whole card collection as one durable record.
// The application layer depends on this interface, not the concrete store.
type CardRepository interface {
	// Load returns the persisted collection in order. If no record exists,
	// or the stored record cannot be parsed, it returns a one-element
	// collection holding the bootstrap default card. Parse failures are
	// recovered here and never surfaced to the caller; only storage I/O
	// can produce an error.
	Load(ctx context.Context) ([]entity.Card, error)

	// Save durably replaces the stored collection. Saving an empty
	// collection deletes the record entirely so the next Load bootstraps
	// to the default card.
	Save(ctx context.Context, cards []entity.Card) error
}
