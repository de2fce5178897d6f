// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cardbox/internal/domain/entity"
)

// CardUsecase is the single mutation surface for the card collection.
// It owns the ordered cards and the active-selection pointer; every
// operation that changes content or order writes through the persistence
// layer before returning, so a caller never observes an acknowledged
// change that could be lost.
type CardUsecase interface {
	// List returns the ordered collection and the id of the active card
	// (empty when the collection is empty).
	List(ctx context.Context) ([]entity.Card, string, error)

	// Get returns the card with the given id.
	Get(ctx context.Context, id string) (entity.Card, error)

	// Create appends a fresh card built from the default profile with the
	// supplied manager label, makes it active and returns it.
	Create(ctx context.Context, input *CreateCardInput) (entity.Card, error)

	// Update replaces the card with matching id in place, keeping its
	// position. An absent id is a silent no-op.
	Update(ctx context.Context, id string, card entity.Card) error

	// SetField applies one dotted field-path mutation to the stored card
	// and returns the updated snapshot.
	SetField(ctx context.Context, id string, input *SetFieldInput) (entity.Card, error)

	// Delete removes the card. If it was active, the first remaining card
	// becomes active (or none if the collection is now empty). Idempotent
	// for absent ids.
	Delete(ctx context.Context, id string) error

	// Reorder moves the card with movedID immediately before the current
	// position of targetID. A missing id or equal ids is a no-op.
	Reorder(ctx context.Context, input *ReorderInput) error

	// SetActive points the editor at the card with the given id.
	// An absent id is a no-op so a UI may call it speculatively.
	SetActive(ctx context.Context, id string) error
}

// --- Input DTOs ---

// CreateCardInput defines the data required to create a card.
type CreateCardInput struct {
	CardName string `json:"cardName" validate:"required"`
}

// SetFieldInput defines one generic form-driven field mutation. Exactly one
// of Value, BoolValue or IntValue must be set, matching the field kind the
// path addresses.
type SetFieldInput struct {
	Path      string  `json:"path" validate:"required"`
	Value     *string `json:"value,omitempty"`
	BoolValue *bool   `json:"boolValue,omitempty"`
	IntValue  *int    `json:"intValue,omitempty"`
}

// ReorderInput defines a drag-and-drop reorder of the manager list.
type ReorderInput struct {
	MovedID  string `json:"movedId" validate:"required"`
	TargetID string `json:"targetId" validate:"required"`
}
