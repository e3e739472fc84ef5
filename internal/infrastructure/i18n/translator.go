// Package i18n provides the localized labels of the dashboard, backed by an x/text catalog.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/orris-inc/statsboard/internal/domain/dashboard"
)

// Supported lists the catalog languages; the first one is the fallback.
var Supported = []language.Tag{language.English, language.Chinese}

// Bundle resolves a translator for a requested language.
type Bundle struct {
	catalog     *catalog.Builder
	matcher     language.Matcher
	defaultLang language.Tag
}

// NewBundle builds the message catalog. defaultLang is used when the request
// names no supported language.
func NewBundle(defaultLang string) (*Bundle, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range messagesEN {
		if err := b.SetString(language.English, key, msg); err != nil {
			return nil, err
		}
	}
	for key, msg := range messagesZH {
		if err := b.SetString(language.Chinese, key, msg); err != nil {
			return nil, err
		}
	}

	bundle := &Bundle{
		catalog: b,
		matcher: language.NewMatcher(Supported),
	}
	bundle.defaultLang = bundle.match(defaultLang, "", language.English)
	return bundle, nil
}

// Negotiate picks the language from an explicit lang parameter, then the
// Accept-Language header, then the configured default.
func (b *Bundle) Negotiate(lang, acceptLanguage string) language.Tag {
	return b.match(lang, acceptLanguage, b.defaultLang)
}

// Translator returns the translator for the negotiated language.
func (b *Bundle) Translator(lang, acceptLanguage string) *Translator {
	tag := b.Negotiate(lang, acceptLanguage)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b.catalog)),
	}
}

// Localize is Translator behind the dashboard's Translator interface.
func (b *Bundle) Localize(lang, acceptLanguage string) (dashboard.Translator, string) {
	t := b.Translator(lang, acceptLanguage)
	return t, t.Lang()
}

func (b *Bundle) match(lang, acceptLanguage string, fallback language.Tag) language.Tag {
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if _, idx, conf := b.matcher.Match(tag); conf != language.No {
				return Supported[idx]
			}
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if _, idx, conf := b.matcher.Match(tags...); conf != language.No {
				return Supported[idx]
			}
		}
	}
	return fallback
}

// Translator looks up dashboard labels in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

var _ dashboard.Translator = (*Translator)(nil)

// T returns the label for key, or the key itself when it is unknown.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Lang reports the translator's language as a BCP 47 tag.
func (t *Translator) Lang() string {
	return t.tag.String()
}
