// Package share implements the shareable-link codec: a whole card packed
// into a single URL query value, minus its image payloads.
package share

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"cardbox/config"
	"cardbox/internal/domain/entity"
	domainerrors "cardbox/internal/domain/errors"
	"cardbox/internal/domain/service"
)

type codec struct {
	baseURL string
}

// NewCodec is the constructor for the share codec. baseURL is the address
// of the static host that serves the public card view.
func NewCodec(cfg *config.Config) service.ShareCodec {
	return &codec{baseURL: cfg.Share.BaseURL}
}

// Encode serializes the card to compact JSON with the three image slots
// cleared, then percent-encodes it for use as a single query value.
// Clearing the slots removes their keys from the JSON entirely, so the
// decoder's defaulting restores the no-image state rather than an
// empty-string image.
func (c *codec) Encode(card entity.Card) (string, error) {
	stripped := card
	stripped.ProfilePictureURL = ""
	stripped.CompanyLogoURL = ""
	stripped.CardBackLogoURL = ""

	raw, err := json.Marshal(stripped)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize card for sharing")
	}

	return url.QueryEscape(string(raw)), nil
}

// Decode recovers a card from a token produced by Encode. The token comes
// straight from an untrusted URL, so every failure collapses into a single
// "no shareable data" error the caller can fall back from.
func (c *codec) Decode(token string) (entity.Card, error) {
	decoded, err := url.QueryUnescape(token)
	if err != nil {
		return entity.Card{}, errors.Wrap(domainerrors.ErrShareTokenInvalid, err.Error())
	}
	if !strings.HasPrefix(strings.TrimSpace(decoded), "{") {
		return entity.Card{}, errors.Wrap(domainerrors.ErrShareTokenInvalid, "token does not hold a card record")
	}

	var partial entity.PartialCard
	if err := json.Unmarshal([]byte(decoded), &partial); err != nil {
		return entity.Card{}, errors.Wrap(domainerrors.ErrShareTokenInvalid, err.Error())
	}

	return entity.WithDefaults(partial), nil
}

// ShareURL builds the full public URL embedding the card's token.
func (c *codec) ShareURL(card entity.Card) (string, error) {
	token, err := c.Encode(card)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s?card=%s", c.baseURL, token), nil
}
