package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// Adapter loads a Catalogue from some source.
type Adapter interface {
	Load(ctx context.Context) (Catalogue, error)
}

// MapAdapter serves an in-memory Catalogue.
type MapAdapter struct {
	Data Catalogue
}

func (a *MapAdapter) Load(_ context.Context) (Catalogue, error) {
	if a.Data == nil {
		return Catalogue{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every YAML file in dir of an fs.FS, typically an embed.FS.
// Files are merged in lexical order; a later file overrides keys of the same
// language at the top level only.
type FSAdapter struct {
	fsys   fs.FS
	dir    string
	parser *YAMLParser
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir, parser: NewYAMLParser()}
}

func (a *FSAdapter) Load(ctx context.Context) (Catalogue, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	result := make(Catalogue)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}

		cat, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
		}

		for lang, tree := range cat {
			if existing, ok := result[lang]; ok {
				maps.Copy(existing, tree)
				continue
			}
			result[lang] = tree
		}
	}
	return result, nil
}
