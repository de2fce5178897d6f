// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"fmt"
	"maps"

	"github.com/google/uuid"
)

// SocialLink is one outbound social profile reference on a card.
// A link with Enabled=false or an empty URL is suppressed everywhere
// it would be rendered or exported; both conditions are always checked
// together.
type SocialLink struct {
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// Socials is the closed set of social profiles a card can carry.
// The key set never grows at runtime; decoders backfill missing entries
// with the zero SocialLink rather than omit them.
type Socials struct {
	LinkedIn  SocialLink `json:"linkedin"`
	Instagram SocialLink `json:"instagram"`
	Twitter   SocialLink `json:"twitter"`
	YouTube   SocialLink `json:"youtube"`
	Facebook  SocialLink `json:"facebook"`
	WhatsApp  SocialLink `json:"whatsapp"`
}

// LogoPosition anchors the company logo over the card header,
// expressed as percentages of the header area.
type LogoPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StyleOptions holds the visual knobs of a card. Currently a single
// accent color applied uniformly across interactive affordances.
type StyleOptions struct {
	AccentColor string `json:"accentColor"`
}

// Card is the central entity: one digital business card profile.
// Apart from the read-only Extra map, it contains no reference types,
// so a plain assignment yields an independent copy.
//
// The three image slots hold either an external URL or a self-contained
// data URL produced by the file-picker pipeline; the core treats them as
// opaque strings. They marshal with omitempty so that a cleared slot is
// absent from any serialized form and defaulting restores the no-image
// state on the next load.
type Card struct {
	ID                    string       `json:"id"`       // Unique within a collection, assigned at creation, never reassigned.
	CardName              string       `json:"cardName"` // Label in the manager list; distinct from the displayed Name.
	Name                  string       `json:"name"`
	Title                 string       `json:"title"`
	CompanyName           string       `json:"companyName"`
	CompanyWebsite        string       `json:"companyWebsite"`
	Phone                 string       `json:"phone"`
	Email                 string       `json:"email"`
	Address               string       `json:"address"`
	AddressLink           string       `json:"addressLink"`
	CalendlyLink          string       `json:"calendlyLink"`
	Socials               Socials      `json:"socials"`
	ProfilePictureURL     string       `json:"profilePictureUrl,omitempty"`
	CompanyLogoURL        string       `json:"companyLogoUrl,omitempty"`
	CompanyLogoPosition   LogoPosition `json:"companyLogoPosition"`
	CompanyLogoSize       int          `json:"companyLogoSize"` // Width in pixels. The UI clamps to 30-250; the model does not.
	CardBackLogoURL       string       `json:"cardBackLogoUrl,omitempty"`
	CardBackLogoSize      int          `json:"cardBackLogoSize"` // Width in pixels. The UI clamps to 50-300; the model does not.
	StyleOptions          StyleOptions `json:"styleOptions"`
	MeetingButtonText     string       `json:"meetingButtonText"`
	SaveContactButtonText string       `json:"saveContactButtonText"`

	// Extra carries fields written by a newer schema than this build knows
	// about. They pass through load and save untouched. The map is never
	// mutated after decoding, so copies of a Card may share it.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownCardKeys are the JSON keys owned by the Card struct itself.
// Anything else found in a record lands in Extra.
var knownCardKeys = []string{
	"id", "cardName", "name", "title", "companyName", "companyWebsite",
	"phone", "email", "address", "addressLink", "calendlyLink", "socials",
	"profilePictureUrl", "companyLogoUrl", "companyLogoPosition",
	"companyLogoSize", "cardBackLogoUrl", "cardBackLogoSize",
	"styleOptions", "meetingButtonText", "saveContactButtonText",
}

// cardAlias prevents MarshalJSON recursion.
type cardAlias Card

// MarshalJSON emits the known fields plus any passed-through Extra keys.
// Map marshaling sorts keys, so output is deterministic.
func (c Card) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(cardAlias(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if _, owned := merged[k]; !owned {
			merged[k] = v
		}
	}

	return json.Marshal(merged)
}

// NewID returns a fresh opaque card identifier.
func NewID() string {
	return fmt.Sprintf("card-%s", uuid.NewString())
}

// DefaultCard returns the canonical bootstrap profile. Every call returns
// an independent copy with an empty ID; callers that persist it assign one
// with NewID.
func DefaultCard() Card {
	return Card{
		CardName:          "Default Profile",
		Name:              "Atul Gupta",
		Title:             "Founder & CEO, Multisteer & Glydus",
		CompanyName:       "Glydus",
		CompanyWebsite:    "https://glydus.com/",
		ProfilePictureURL: "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?q=80&w=250&h=250&fit=crop&crop=faces",
		Phone:             "+919876543210",
		Email:             "atul.gupta@multisteer.com",
		Address:           "Nagpur, Maharashtra, India",
		AddressLink:       "https://maps.google.com/?q=Nagpur,+Maharashtra,+India",
		CalendlyLink:      "https://calendly.com/your-link",
		Socials: Socials{
			LinkedIn:  SocialLink{URL: "https://www.linkedin.com/in/atul-gupta-904bb7127/", Enabled: true},
			Instagram: SocialLink{URL: "https://www.instagram.com/atulgupta_1504?igsh=MXRrZ3l2NmVzdmZiag==", Enabled: true},
			Twitter:   SocialLink{URL: "https://x.com/Glydus_IN", Enabled: true},
			YouTube:   SocialLink{URL: "https://www.youtube.com/@Glydus", Enabled: true},
			Facebook:  SocialLink{URL: "https://www.facebook.com/share/16bWt5DqJ6/", Enabled: true},
			WhatsApp:  SocialLink{URL: "https://wa.me/919876543210", Enabled: true},
		},
		CompanyLogoPosition:   LogoPosition{X: 50, Y: 50},
		CompanyLogoSize:       140,
		CardBackLogoSize:      160,
		StyleOptions:          StyleOptions{AccentColor: "#00F0B5"},
		MeetingButtonText:     "Book Meeting",
		SaveContactButtonText: "Save Contact",
	}
}

// PartialCard is a card record as found at a load boundary (persisted
// collection, share token): any top-level key may be absent. Nested blocks
// are merged shallowly, matching how previously persisted records were
// written: a present block is taken wholly, with missing nested keys
// zero-valued.
type PartialCard struct {
	ID                    *string       `json:"id,omitempty"`
	CardName              *string       `json:"cardName,omitempty"`
	Name                  *string       `json:"name,omitempty"`
	Title                 *string       `json:"title,omitempty"`
	CompanyName           *string       `json:"companyName,omitempty"`
	CompanyWebsite        *string       `json:"companyWebsite,omitempty"`
	Phone                 *string       `json:"phone,omitempty"`
	Email                 *string       `json:"email,omitempty"`
	Address               *string       `json:"address,omitempty"`
	AddressLink           *string       `json:"addressLink,omitempty"`
	CalendlyLink          *string       `json:"calendlyLink,omitempty"`
	Socials               *Socials      `json:"socials,omitempty"`
	ProfilePictureURL     *string       `json:"profilePictureUrl,omitempty"`
	CompanyLogoURL        *string       `json:"companyLogoUrl,omitempty"`
	CompanyLogoPosition   *LogoPosition `json:"companyLogoPosition,omitempty"`
	CompanyLogoSize       *int          `json:"companyLogoSize,omitempty"`
	CardBackLogoURL       *string       `json:"cardBackLogoUrl,omitempty"`
	CardBackLogoSize      *int          `json:"cardBackLogoSize,omitempty"`
	StyleOptions          *StyleOptions `json:"styleOptions,omitempty"`
	MeetingButtonText     *string       `json:"meetingButtonText,omitempty"`
	SaveContactButtonText *string       `json:"saveContactButtonText,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

// partialAlias prevents UnmarshalJSON recursion.
type partialAlias PartialCard

// UnmarshalJSON decodes the known keys and collects everything else into
// Extra so newer-schema fields survive a load/save cycle.
func (p *PartialCard) UnmarshalJSON(data []byte) error {
	var alias partialAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownCardKeys {
		delete(raw, k)
	}
	if len(raw) > 0 {
		alias.Extra = raw
	}

	*p = PartialCard(alias)

	return nil
}

// WithDefaults merges a partial record over the canonical default card so
// that records missing newer fields are upgraded losslessly. Present fields
// win, absent fields take the default's value (including the full default
// Socials block). Idempotent: applying it to its own output is a no-op.
func WithDefaults(p PartialCard) Card {
	c := DefaultCard()

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&c.ID, p.ID)
	setStr(&c.CardName, p.CardName)
	setStr(&c.Name, p.Name)
	setStr(&c.Title, p.Title)
	setStr(&c.CompanyName, p.CompanyName)
	setStr(&c.CompanyWebsite, p.CompanyWebsite)
	setStr(&c.Phone, p.Phone)
	setStr(&c.Email, p.Email)
	setStr(&c.Address, p.Address)
	setStr(&c.AddressLink, p.AddressLink)
	setStr(&c.CalendlyLink, p.CalendlyLink)
	setStr(&c.ProfilePictureURL, p.ProfilePictureURL)
	setStr(&c.CompanyLogoURL, p.CompanyLogoURL)
	setStr(&c.CardBackLogoURL, p.CardBackLogoURL)
	setStr(&c.MeetingButtonText, p.MeetingButtonText)
	setStr(&c.SaveContactButtonText, p.SaveContactButtonText)

	if p.Socials != nil {
		c.Socials = *p.Socials
	}
	if p.CompanyLogoPosition != nil {
		c.CompanyLogoPosition = *p.CompanyLogoPosition
	}
	if p.CompanyLogoSize != nil {
		c.CompanyLogoSize = *p.CompanyLogoSize
	}
	if p.CardBackLogoSize != nil {
		c.CardBackLogoSize = *p.CardBackLogoSize
	}
	if p.StyleOptions != nil {
		c.StyleOptions = *p.StyleOptions
	}
	if len(p.Extra) > 0 {
		c.Extra = maps.Clone(p.Extra)
	}

	return c
}

// Partial converts a full card into a partial record with every field
// present. Pointers refer to a private copy, never to c's own storage.
func (c Card) Partial() PartialCard {
	cp := c

	return PartialCard{
		ID:                    &cp.ID,
		CardName:              &cp.CardName,
		Name:                  &cp.Name,
		Title:                 &cp.Title,
		CompanyName:           &cp.CompanyName,
		CompanyWebsite:        &cp.CompanyWebsite,
		Phone:                 &cp.Phone,
		Email:                 &cp.Email,
		Address:               &cp.Address,
		AddressLink:           &cp.AddressLink,
		CalendlyLink:          &cp.CalendlyLink,
		Socials:               &cp.Socials,
		ProfilePictureURL:     &cp.ProfilePictureURL,
		CompanyLogoURL:        &cp.CompanyLogoURL,
		CompanyLogoPosition:   &cp.CompanyLogoPosition,
		CompanyLogoSize:       &cp.CompanyLogoSize,
		CardBackLogoURL:       &cp.CardBackLogoURL,
		CardBackLogoSize:      &cp.CardBackLogoSize,
		StyleOptions:          &cp.StyleOptions,
		MeetingButtonText:     &cp.MeetingButtonText,
		SaveContactButtonText: &cp.SaveContactButtonText,
		Extra:                 maps.Clone(cp.Extra),
	}
}
