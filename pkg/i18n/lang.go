package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language option is given.
const DefaultLanguage = "en"

// newMatcher builds a matcher whose first tag is the default language, so
// unknown requests resolve to it.
func newMatcher(defaultLang string, langs []string) (language.Matcher, []string) {
	ordered := make([]string, 0, len(langs)+1)
	ordered = append(ordered, defaultLang)
	for _, l := range langs {
		if l != defaultLang {
			ordered = append(ordered, l)
		}
	}

	tags := make([]language.Tag, len(ordered))
	for i, l := range ordered {
		tags[i] = language.Make(l)
	}
	return language.NewMatcher(tags), ordered
}

// Match returns the supported language closest to lang, or the default
// language when nothing is close enough. lang may be a BCP 47 tag such as
// "es-MX" or an Accept-Language header value.
func (t *Translator) Match(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return t.defaultLang
	}
	if _, ok := t.catalogue[strings.ToLower(lang)]; ok {
		return strings.ToLower(lang)
	}

	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}
