package codec

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casing holds the rules for lowercasing plaintext before encoding.
type Casing struct {
	Tag    language.Tag // language to apply casing rules for
	Locale string       // BCP 47 locale string the tag has been derived from
}

// DefaultCasing returns language-neutral lowercasing rules.
func DefaultCasing() *Casing {
	return &Casing{Tag: language.Und, Locale: "und"}
}

// CasingForLocale creates casing rules for a BCP 47 locale string, e.g. "tr-TR".
func CasingForLocale(locale string) *Casing {
	return &Casing{Tag: language.Make(locale), Locale: locale}
}

// CasingFromEnvironment creates casing rules for the locale of the current
// user. If the locale cannot be detected, "en-US" is assumed.
func CasingFromEnvironment() *Casing {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf("%v", err)
		userLocale = "en-US"
		tracer().Infof("casing uses default user locale %v", userLocale)
	} else {
		tracer().Infof("casing detected user locale %v", userLocale)
	}
	return CasingForLocale(userLocale)
}

// Lower returns s with all letters mapped to lowercase.
func (c *Casing) Lower(s string) string {
	if c == nil {
		c = DefaultCasing()
	}
	// Casers are stateful and must not be shared between goroutines.
	return cases.Lower(c.Tag).String(s)
}
