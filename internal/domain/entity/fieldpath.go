package entity

import "fmt"

// The editor drives every form input through one generic change handler
// addressing fields by a dotted path ("socials.linkedin.url",
// "styleOptions.accentColor"). The paths form a closed set, so instead of
// runtime traversal each path maps to a typed setter.

var stringSetters = map[string]func(*Card, string){
	"cardName":                 func(c *Card, v string) { c.CardName = v },
	"name":                     func(c *Card, v string) { c.Name = v },
	"title":                    func(c *Card, v string) { c.Title = v },
	"companyName":              func(c *Card, v string) { c.CompanyName = v },
	"companyWebsite":           func(c *Card, v string) { c.CompanyWebsite = v },
	"phone":                    func(c *Card, v string) { c.Phone = v },
	"email":                    func(c *Card, v string) { c.Email = v },
	"address":                  func(c *Card, v string) { c.Address = v },
	"addressLink":              func(c *Card, v string) { c.AddressLink = v },
	"calendlyLink":             func(c *Card, v string) { c.CalendlyLink = v },
	"meetingButtonText":        func(c *Card, v string) { c.MeetingButtonText = v },
	"saveContactButtonText":    func(c *Card, v string) { c.SaveContactButtonText = v },
	"profilePictureUrl":        func(c *Card, v string) { c.ProfilePictureURL = v },
	"companyLogoUrl":           func(c *Card, v string) { c.CompanyLogoURL = v },
	"cardBackLogoUrl":          func(c *Card, v string) { c.CardBackLogoURL = v },
	"styleOptions.accentColor": func(c *Card, v string) { c.StyleOptions.AccentColor = v },
	"socials.linkedin.url":     func(c *Card, v string) { c.Socials.LinkedIn.URL = v },
	"socials.instagram.url":    func(c *Card, v string) { c.Socials.Instagram.URL = v },
	"socials.twitter.url":      func(c *Card, v string) { c.Socials.Twitter.URL = v },
	"socials.youtube.url":      func(c *Card, v string) { c.Socials.YouTube.URL = v },
	"socials.facebook.url":     func(c *Card, v string) { c.Socials.Facebook.URL = v },
	"socials.whatsapp.url":     func(c *Card, v string) { c.Socials.WhatsApp.URL = v },
}

var boolSetters = map[string]func(*Card, bool){
	"socials.linkedin.enabled":  func(c *Card, v bool) { c.Socials.LinkedIn.Enabled = v },
	"socials.instagram.enabled": func(c *Card, v bool) { c.Socials.Instagram.Enabled = v },
	"socials.twitter.enabled":   func(c *Card, v bool) { c.Socials.Twitter.Enabled = v },
	"socials.youtube.enabled":   func(c *Card, v bool) { c.Socials.YouTube.Enabled = v },
	"socials.facebook.enabled":  func(c *Card, v bool) { c.Socials.Facebook.Enabled = v },
	"socials.whatsapp.enabled":  func(c *Card, v bool) { c.Socials.WhatsApp.Enabled = v },
}

var intSetters = map[string]func(*Card, int){
	"companyLogoSize":       func(c *Card, v int) { c.CompanyLogoSize = v },
	"cardBackLogoSize":      func(c *Card, v int) { c.CardBackLogoSize = v },
	"companyLogoPosition.x": func(c *Card, v int) { c.CompanyLogoPosition.X = float64(v) },
	"companyLogoPosition.y": func(c *Card, v int) { c.CompanyLogoPosition.Y = float64(v) },
}

// KnownStringPath reports whether path addresses a text field.
func KnownStringPath(path string) bool {
	_, ok := stringSetters[path]
	return ok
}

// KnownBoolPath reports whether path addresses a toggle field.
func KnownBoolPath(path string) bool {
	_, ok := boolSetters[path]
	return ok
}

// KnownIntPath reports whether path addresses a numeric field.
func KnownIntPath(path string) bool {
	_, ok := intSetters[path]
	return ok
}

// SetPath returns a copy of c with the text field at path set to value.
// The input card is never modified. An unknown path is a programming
// error at the call site and panics; callers handling external input
// must check KnownStringPath first.
func SetPath(c Card, path, value string) Card {
	set, ok := stringSetters[path]
	if !ok {
		panic(fmt.Sprintf("entity: unknown card field path %q", path))
	}

	out := c
	set(&out, value)

	return out
}

// SetPathBool is SetPath for toggle fields.
func SetPathBool(c Card, path string, value bool) Card {
	set, ok := boolSetters[path]
	if !ok {
		panic(fmt.Sprintf("entity: unknown card toggle path %q", path))
	}

	out := c
	set(&out, value)

	return out
}

// SetPathInt is SetPath for numeric fields (logo sizes and position).
func SetPathInt(c Card, path string, value int) Card {
	set, ok := intSetters[path]
	if !ok {
		panic(fmt.Sprintf("entity: unknown card numeric path %q", path))
	}

	out := c
	set(&out, value)

	return out
}
