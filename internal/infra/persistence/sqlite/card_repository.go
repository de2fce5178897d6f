package sqlite

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"cardbox/internal/domain/entity"
	"cardbox/internal/domain/repository"
)

// collectionKey is the single well-known record under which the whole
// card collection lives, kept stable across schema revisions so older
// data keeps loading.
const collectionKey = "savedDigitalCards"

// cardRepository persists the collection as one JSON array under
// collectionKey. Load is forward compatible: every entry runs through
// the defaulting merge, and unparsable data is treated the same as an
// absent record.
type cardRepository struct {
	kv     *KV
	logger *slog.Logger
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(kv *KV, logger *slog.Logger) repository.CardRepository {
	return &cardRepository{
		kv:     kv,
		logger: logger,
	}
}

// Load returns the persisted collection, bootstrapping to a single
// default card when no record exists or the record cannot be parsed.
// Parse failures are recovered here and never reach the caller.
func (r *cardRepository) Load(ctx context.Context) ([]entity.Card, error) {
	raw, ok, err := r.kv.Get(ctx, collectionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load card collection")
	}
	if !ok {
		return r.bootstrap(), nil
	}

	var partials []entity.PartialCard
	if err := json.Unmarshal(raw, &partials); err != nil {
		r.logger.Warn("stored card collection is unparsable, bootstrapping to default", "error", err)

		return r.bootstrap(), nil
	}
	if len(partials) == 0 {
		return r.bootstrap(), nil
	}

	cards := make([]entity.Card, 0, len(partials))
	for _, p := range partials {
		cards = append(cards, entity.WithDefaults(p))
	}

	return cards, nil
}

// Save durably replaces the stored collection. An empty collection
// deletes the record outright instead of writing an empty-array token,
// so the next Load bootstraps to the default card.
func (r *cardRepository) Save(ctx context.Context, cards []entity.Card) error {
	if len(cards) == 0 {
		return errors.Wrap(r.kv.Delete(ctx, collectionKey), "failed to clear card collection")
	}

	raw, err := json.Marshal(cards)
	if err != nil {
		return errors.Wrap(err, "failed to serialize card collection")
	}

	return errors.Wrap(r.kv.Put(ctx, collectionKey, raw), "failed to save card collection")
}

func (r *cardRepository) bootstrap() []entity.Card {
	card := entity.DefaultCard()
	card.ID = entity.NewID()

	return []entity.Card{card}
}
