// Package i18n provides a small translation catalogue for user-facing
// messages.
//
// Catalogues are YAML documents keyed by language, with nested keys addressed
// by dot notation and %{name} placeholders:
//
//	en:
//	  driver:
//	    under_required_age: "Age is: %{age} years"
//
// Adapters supply catalogues: MapAdapter for in-memory data and FSAdapter for
// a directory of YAML files in any fs.FS (usually an embed.FS).
//
// # Language matching
//
// Requested languages are matched with golang.org/x/text/language, so "es-MX"
// or an Accept-Language value such as "fr;q=0.9, es;q=0.8" resolves to the
// closest supported language. When nothing matches, the default language is
// used, and when the key is missing there as well, the key itself is returned.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(files, "translations"))
//	if err != nil {
//	    return err
//	}
//	msg := tr.T("es", "driver.under_required_age", "age", "17")
package i18n
