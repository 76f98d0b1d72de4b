// Package i18n holds the UI strings in Japanese and English and picks the
// language for a request.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var Supported = []language.Tag{language.Japanese, language.English}

type Localizer struct {
	fallback language.Tag
	matcher  language.Matcher
	catalog  catalog.Catalog
}

// New builds a Localizer whose fallback is defaultLocale, or Japanese when
// defaultLocale is not supported.
func New(defaultLocale string) *Localizer {
	fallback := language.Japanese
	if tag, err := language.Parse(defaultLocale); err == nil {
		if base := Base(tag); base == language.English {
			fallback = language.English
		}
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for key, m := range messages {
		_ = b.SetString(language.Japanese, key, m.ja)
		_ = b.SetString(language.English, key, m.en)
	}

	// The fallback goes first so that an unmatched Accept-Language gets it.
	tags := []language.Tag{fallback}
	for _, t := range Supported {
		if t != fallback {
			tags = append(tags, t)
		}
	}

	return &Localizer{
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
		catalog:  b,
	}
}

// Match picks a supported language. An explicit override (?lang=en) wins
// over the Accept-Language header.
func (l *Localizer) Match(override, acceptLanguage string) language.Tag {
	tag, _ := language.MatchStrings(l.matcher, override, acceptLanguage)
	return Base(tag)
}

func (l *Localizer) Fallback() language.Tag {
	return l.fallback
}

func (l *Localizer) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Base(tag), message.Catalog(l.catalog))
}

// Base reduces a tag to one of the supported base languages.
func Base(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	if base.String() == "en" {
		return language.English
	}
	return language.Japanese
}
