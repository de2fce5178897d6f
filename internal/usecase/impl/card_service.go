// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"cardbox/internal/domain/entity"
	domainerrors "cardbox/internal/domain/errors"
	"cardbox/internal/domain/repository"
	"cardbox/internal/usecase"

	"github.com/pkg/errors"
)

// cardService implements the CardUsecase interface. It is the only owner
// of the in-memory collection and the active-selection pointer; the mutex
// serializes HTTP-driven mutations so each one runs against a consistent
// snapshot and persists before the next begins.
type cardService struct {
	repo   repository.CardRepository
	logger *slog.Logger

	mu       sync.Mutex
	cards    []entity.Card
	activeID string
}

// NewCardService loads the persisted collection (bootstrapping to the
// default card when storage is empty) and activates its first entry.
func NewCardService(
	ctx context.Context,
	repo repository.CardRepository,
	logger *slog.Logger,
) (usecase.CardUsecase, error) {
	cards, err := repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load card collection")
	}

	srv := &cardService{
		repo:   repo,
		logger: logger,
		cards:  cards,
	}
	if len(cards) > 0 {
		srv.activeID = cards[0].ID
	}
	logger.Info("card collection loaded", "cards", len(cards), "activeId", srv.activeID)

	return srv, nil
}

// List returns the ordered collection and the active card id.
func (srv *cardService) List(ctx context.Context) ([]entity.Card, string, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.cards), srv.activeID, nil
}

// Get returns the card with the given id.
func (srv *cardService) Get(ctx context.Context, id string) (entity.Card, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := srv.indexLocked(id)
	if idx < 0 {
		return entity.Card{}, errors.Wrap(domainerrors.ErrCardNotFound, "get card")
	}

	return srv.cards[idx], nil
}

// Create builds a fresh card from the default profile, appends it, makes
// it active and persists the collection before returning.
func (srv *cardService) Create(ctx context.Context, input *usecase.CreateCardInput) (entity.Card, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	card := entity.DefaultCard()
	card.ID = entity.NewID()
	card.CardName = input.CardName
	card.Name = "New Profile"
	card.Title = "New Title"

	prevCards, prevActive := slices.Clone(srv.cards), srv.activeID
	srv.cards = append(srv.cards, card)
	srv.activeID = card.ID

	if err := srv.persistLocked(ctx); err != nil {
		srv.cards, srv.activeID = prevCards, prevActive

		return entity.Card{}, err
	}
	srv.logger.Info("card created", "id", card.ID, "cardName", card.CardName)

	return card, nil
}

// Update replaces the card with matching id in place. An absent id is a
// silent no-op; the card's identity can never be reassigned through it.
func (srv *cardService) Update(ctx context.Context, id string, card entity.Card) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := srv.indexLocked(id)
	if idx < 0 {
		srv.logger.Debug("update for unknown card ignored", "id", id)

		return nil
	}

	card.ID = id
	prev := srv.cards[idx]
	srv.cards[idx] = card

	if err := srv.persistLocked(ctx); err != nil {
		srv.cards[idx] = prev

		return err
	}
	srv.logger.Info("card updated", "id", id)

	return nil
}

// SetField applies one dotted field-path mutation to the stored card.
func (srv *cardService) SetField(ctx context.Context, id string, input *usecase.SetFieldInput) (entity.Card, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := srv.indexLocked(id)
	if idx < 0 {
		return entity.Card{}, errors.Wrap(domainerrors.ErrCardNotFound, "set field")
	}

	// Reject unknown paths before touching the mutator: from here on an
	// unknown path is an internal contract violation and panics.
	var updated entity.Card
	switch {
	case input.Value != nil && entity.KnownStringPath(input.Path):
		updated = entity.SetPath(srv.cards[idx], input.Path, *input.Value)
	case input.BoolValue != nil && entity.KnownBoolPath(input.Path):
		updated = entity.SetPathBool(srv.cards[idx], input.Path, *input.BoolValue)
	case input.IntValue != nil && entity.KnownIntPath(input.Path):
		updated = entity.SetPathInt(srv.cards[idx], input.Path, *input.IntValue)
	default:
		return entity.Card{}, errors.Wrapf(domainerrors.ErrUnknownFieldPath, "path %q", input.Path)
	}

	prev := srv.cards[idx]
	srv.cards[idx] = updated

	if err := srv.persistLocked(ctx); err != nil {
		srv.cards[idx] = prev

		return entity.Card{}, err
	}

	return updated, nil
}

// Delete removes the card and fixes up the active pointer: the first
// remaining card becomes active if the deleted one was, or none if the
// collection is now empty.
func (srv *cardService) Delete(ctx context.Context, id string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := srv.indexLocked(id)
	if idx < 0 {
		return nil
	}

	prevCards, prevActive := slices.Clone(srv.cards), srv.activeID
	srv.cards = slices.Delete(slices.Clone(srv.cards), idx, idx+1)
	if srv.activeID == id {
		if len(srv.cards) > 0 {
			srv.activeID = srv.cards[0].ID
		} else {
			srv.activeID = ""
		}
	}

	if err := srv.persistLocked(ctx); err != nil {
		srv.cards, srv.activeID = prevCards, prevActive

		return err
	}
	srv.logger.Info("card deleted", "id", id, "activeId", srv.activeID)

	return nil
}

// Reorder moves movedId immediately before the current position of
// targetId. Missing ids or equal ids are a no-op.
func (srv *cardService) Reorder(ctx context.Context, input *usecase.ReorderInput) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if input.MovedID == input.TargetID {
		return nil
	}
	movedIdx := srv.indexLocked(input.MovedID)
	targetIdx := srv.indexLocked(input.TargetID)
	if movedIdx < 0 || targetIdx < 0 {
		return nil
	}

	prev := slices.Clone(srv.cards)
	moved := srv.cards[movedIdx]
	cards := slices.Delete(slices.Clone(srv.cards), movedIdx, movedIdx+1)
	insertAt := slices.IndexFunc(cards, func(c entity.Card) bool { return c.ID == input.TargetID })
	srv.cards = slices.Insert(cards, insertAt, moved)

	if err := srv.persistLocked(ctx); err != nil {
		srv.cards = prev

		return err
	}

	return nil
}

// SetActive points the editor at the given card. The pointer is not
// persisted; it is rebuilt from collection order on the next load.
func (srv *cardService) SetActive(ctx context.Context, id string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.indexLocked(id) < 0 {
		srv.logger.Debug("activate for unknown card ignored", "id", id)

		return nil
	}
	srv.activeID = id

	return nil
}

func (srv *cardService) indexLocked(id string) int {
	return slices.IndexFunc(srv.cards, func(c entity.Card) bool { return c.ID == id })
}

// persistLocked writes the collection through before the mutation is
// acknowledged; callers roll the in-memory state back when it fails.
func (srv *cardService) persistLocked(ctx context.Context) error {
	if err := srv.repo.Save(ctx, srv.cards); err != nil {
		srv.logger.Error("failed to persist card collection", "error", err)

		return errors.Wrap(err, "failed to persist card collection")
	}

	return nil
}
