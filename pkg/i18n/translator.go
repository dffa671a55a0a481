package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/drivercheck/pkg/logger"
)

// Translator resolves dot-separated keys against a loaded Catalogue.
// It is read-only after construction and safe for concurrent use.
type Translator struct {
	catalogue   Catalogue
	defaultLang string
	logger      *slog.Logger
	matcher     language.Matcher
	langs       []string
}

// NewTranslator loads the catalogue from adapter and prepares language
// matching.
func NewTranslator(ctx context.Context, adapter Adapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	cat, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tree := range cat {
		if lang == "" || tree == nil {
			return nil, fmt.Errorf("%w: empty language or nil tree for %q", ErrInvalidCatalogue, lang)
		}
	}

	t.catalogue = cat
	t.defaultLang = strings.ToLower(t.defaultLang)
	t.matcher, t.langs = newMatcher(t.defaultLang, t.SupportedLanguages())

	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.SupportedLanguages()),
	)
	return t, nil
}

// SupportedLanguages returns the catalogue languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogue))
	for lang := range t.catalogue {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Has reports whether key exists for lang exactly, without fallback.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(strings.ToLower(lang), key)
	return ok
}

// T translates key for lang. Placeholders of the form %{name} are replaced
// from args given as name, value pairs.
//
// Resolution order: the best match for lang, then the default language, then
// the key itself.
//
//	// "driver.under_required_age": "Age is: %{age} years"
//	tr.T("en-GB", "driver.under_required_age", "age", "17") // "Age is: 17 years"
func (t *Translator) T(lang, key string, args ...string) string {
	params := buildParams(args)

	matched := t.Match(lang)
	if s, ok := t.lookup(matched, key); ok {
		return substitute(s, params)
	}
	if matched != t.defaultLang {
		if s, ok := t.lookup(t.defaultLang, key); ok {
			return substitute(s, params)
		}
	}

	t.logger.Warn("translation not found",
		logger.Component("i18n"),
		slog.String("lang", lang),
		slog.String("key", key),
	)
	return substitute(key, params)
}

// lookup walks the nested tree of lang along the dot-separated key.
func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.catalogue[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := node[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		node = next
	}
	return "", false
}

func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are kept as is.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
