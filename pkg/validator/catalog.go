package validator

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

//go:embed locales/*
var locales embed.FS

// catalogParser reads both YAML and JSON locale files.
func catalogParser() i18n.MultiParser {
	return i18n.MultiParser{i18n.NewYAMLParser(), i18n.NewJSONParser()}
}

// DefaultCatalog loads the bundled translations of the stock messages
// (English, German, French and Spanish) keyed by MessageKey. Pass it to
// WithCatalog.
func DefaultCatalog(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(catalogParser(), locales, "locales"), opts...)
}

// LoadCatalog loads a message catalog from disk. path is either a single
// .yaml, .yml or .json file, or a directory whose YAML and JSON files are
// merged in lexical order. Keys follow MessageKey, so a file may override
// any subset of the stock messages:
//
//	en:
//	  validation:
//	    not_empty: "Please fill in {PropertyName}."
func LoadCatalog(ctx context.Context, path string, opts ...i18n.Option) (*i18n.Translator, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(i18n.ErrFailedToReadFile, err)
	}
	if info.IsDir() {
		return i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter(catalogParser(), path), opts...)
	}

	parser := i18n.NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", i18n.ErrUnsupportedFormat, path)
	}
	return i18n.NewTranslator(ctx, i18n.NewFileAdapter(parser, path), opts...)
}
