package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogue maps a language code to its nested translation tree.
type Catalogue map[string]map[string]any

// YAMLParser reads catalogues shaped as
//
//	en:
//	  driver:
//	    without_licence: "Without licence"
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content into a Catalogue. Every top-level key must be a
// language holding a mapping.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (Catalogue, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(Catalogue, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected mapping, got %T", ErrInvalidCatalogue, lang, val)
		}
		result[strings.ToLower(lang)] = tree
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalogue)
	}
	return result, nil
}

// SupportsFileExtension reports whether ext (with or without the dot) is a
// YAML extension.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
