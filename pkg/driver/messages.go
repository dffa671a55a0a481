package driver

import (
	"context"
	"embed"
	"errors"

	"github.com/dmitrymomot/drivercheck/pkg/i18n"
)

//go:embed translations/*.yaml
var translations embed.FS

// NewTranslator loads the bundled violation messages.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(translations, "translations"), opts...)
}

// Localize renders err in lang. Errors that are not DriverError values, or a
// nil translator, fall back to err.Error().
func Localize(tr *i18n.Translator, lang string, err error) string {
	if err == nil {
		return ""
	}
	var de DriverError
	if tr == nil || !errors.As(err, &de) {
		return err.Error()
	}
	return tr.T(lang, de.TranslationKey(), de.TranslationValues()...)
}

// LocalizeAll renders every error in order.
func LocalizeAll(tr *i18n.Translator, lang string, errs []error) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = Localize(tr, lang, err)
	}
	return out
}
