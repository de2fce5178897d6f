// Package vcard renders cards as downloadable vCard 3.0 contact files.
package vcard

import (
	"strings"

	"cardbox/internal/domain/entity"
	"cardbox/internal/domain/service"
)

type serializer struct{}

// NewSerializer is the constructor for the vCard 3.0 serializer.
func NewSerializer() service.ContactFileService {
	return &serializer{}
}

// Render produces the vCard 3.0 text for the card. Lines are joined with
// bare "\n" and the output carries no trailing newline, matching what the
// established reader apps already accept from this service.
func (s *serializer) Render(card entity.Card) string {
	given, family := splitName(card.Name)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + family + ";" + given + ";;;",
		"FN:" + card.Name,
		"ORG:" + card.CompanyName,
		"TITLE:" + card.Title,
		"TEL;TYPE=WORK,VOICE:" + card.Phone,
		"EMAIL:" + card.Email,
		"ADR;TYPE=WORK:;;" + card.Address,
	}
	if card.CompanyWebsite != "" {
		lines = append(lines, "URL:"+card.CompanyWebsite)
	}
	if photo, ok := photoLine(card.ProfilePictureURL); ok {
		lines = append(lines, photo)
	}
	lines = append(lines, socialLines(card.Socials)...)
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// Filename derives the download name from the card holder's name, with
// spaces flattened to underscores.
func (s *serializer) Filename(card entity.Card) string {
	return strings.ReplaceAll(card.Name, " ", "_") + ".vcf"
}

// splitName treats the last whitespace-separated token as the family name
// and everything before it as the given name. Single-token names end up
// entirely in the family slot.
func splitName(name string) (given, family string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}

	family = parts[len(parts)-1]
	given = strings.Join(parts[:len(parts)-1], " ")

	return given, family
}

// photoLine embeds an inline data-URI picture as a base64 PHOTO property.
// Remote http(s) pictures are skipped: readers fetch those unreliably, and
// the original contact exporter never emitted them either.
func photoLine(pictureURL string) (string, bool) {
	if !strings.HasPrefix(pictureURL, "data:image/") {
		return "", false
	}

	comma := strings.Index(pictureURL, ",")
	semi := strings.Index(pictureURL, ";")
	if comma < 0 || semi < 0 || semi > comma {
		return "", false
	}

	// The TYPE value is the full uppercased mime, with JPEG shortened,
	// so an inline JPEG comes out as "IMAGE/JPG".
	mime := strings.ToUpper(pictureURL[len("data:"):semi])
	mime = strings.Replace(mime, "JPEG", "JPG", 1)

	return "PHOTO;ENCODING=b;TYPE=" + mime + ":" + pictureURL[comma+1:], true
}

// socialLines emits X-SOCIALPROFILE entries for the networks most contact
// apps recognize. Disabled or empty links are skipped.
func socialLines(socials entity.Socials) []string {
	var lines []string

	add := func(kind string, link entity.SocialLink) {
		if link.Enabled && link.URL != "" {
			lines = append(lines, "X-SOCIALPROFILE;type="+kind+":"+link.URL)
		}
	}

	add("linkedin", socials.LinkedIn)
	add("twitter", socials.Twitter)
	add("instagram", socials.Instagram)

	return lines
}
