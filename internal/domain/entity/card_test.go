package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults_EmptyRecordYieldsDefault(t *testing.T) {
	got := WithDefaults(PartialCard{})

	assert.Equal(t, DefaultCard(), got)
}

func TestWithDefaults_PresentFieldsWin(t *testing.T) {
	name := "Jane Roe"
	pic := "data:image/png;base64,AAAA"
	size := 42

	got := WithDefaults(PartialCard{
		Name:              &name,
		ProfilePictureURL: &pic,
		CompanyLogoSize:   &size,
	})

	assert.Equal(t, "Jane Roe", got.Name)
	assert.Equal(t, pic, got.ProfilePictureURL)
	assert.Equal(t, 42, got.CompanyLogoSize)

	// Untouched fields still come from the default profile.
	def := DefaultCard()
	assert.Equal(t, def.Email, got.Email)
	assert.Equal(t, def.StyleOptions, got.StyleOptions)
}

func TestWithDefaults_SocialsBlockIsTakenWholly(t *testing.T) {
	// A record written with only one network present must not resurrect
	// the default entries for the other networks.
	var p PartialCard
	require.NoError(t, json.Unmarshal([]byte(`{"socials":{"linkedin":{"url":"https://example.com/in","enabled":true}}}`), &p))

	got := WithDefaults(p)

	assert.Equal(t, SocialLink{URL: "https://example.com/in", Enabled: true}, got.Socials.LinkedIn)
	assert.Equal(t, SocialLink{}, got.Socials.Twitter)
	assert.Equal(t, SocialLink{}, got.Socials.WhatsApp)
}

func TestWithDefaults_Idempotent(t *testing.T) {
	card := DefaultCard()
	card.ID = NewID()
	card.Name = "Someone Else"
	card.Socials.Twitter = SocialLink{}
	card.Extra = map[string]json.RawMessage{"futureField": json.RawMessage(`"kept"`)}

	again := WithDefaults(card.Partial())

	assert.Equal(t, card, again)
}

func TestCard_MarshalJSON_OmitsEmptyImageSlots(t *testing.T) {
	card := DefaultCard()
	card.ProfilePictureURL = ""
	card.CompanyLogoURL = ""
	card.CardBackLogoURL = ""

	raw, err := json.Marshal(card)
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "profilePictureUrl")
	assert.NotContains(t, body, "companyLogoUrl")
	assert.NotContains(t, body, "cardBackLogoUrl")
	// Non-image fields stay present even when empty.
	assert.Contains(t, body, `"cardName"`)
}

func TestCard_UnknownFieldsSurviveRoundTrip(t *testing.T) {
	stored := `{"id":"card-1","name":"Jane Roe","futureField":{"nested":true},"anotherOne":7}`

	var p PartialCard
	require.NoError(t, json.Unmarshal([]byte(stored), &p))
	card := WithDefaults(p)

	require.Len(t, card.Extra, 2)

	raw, err := json.Marshal(card)
	require.NoError(t, err)

	var out map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.JSONEq(t, `{"nested":true}`, string(out["futureField"]))
	assert.Equal(t, "7", string(out["anotherOne"]))
	// Known keys appear exactly once with the struct's value.
	assert.Equal(t, `"Jane Roe"`, string(out["name"]))
}

func TestPartialCard_UnmarshalJSON_KnownKeysNeverLandInExtra(t *testing.T) {
	var p PartialCard
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","cardName":"Y"}`), &p))

	assert.Empty(t, p.Extra)
	require.NotNil(t, p.Name)
	assert.Equal(t, "X", *p.Name)
}

func TestDefaultCard_ReturnsIndependentCopies(t *testing.T) {
	a := DefaultCard()
	a.Socials.LinkedIn.URL = "mutated"
	a.Name = "mutated"

	b := DefaultCard()
	assert.NotEqual(t, a.Name, b.Name)
	assert.NotEqual(t, a.Socials.LinkedIn.URL, b.Socials.LinkedIn.URL)
	assert.Empty(t, b.ID)
}

func TestNewID_PrefixedAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := NewID()
		assert.True(t, strings.HasPrefix(id, "card-"))
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}
