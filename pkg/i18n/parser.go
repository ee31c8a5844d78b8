package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes translation content. The outer map of the result is keyed
// by language, the inner one holds keys and (possibly nested) values.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether the parser reads files with ext.
	// ext may carry a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// MultiParser reads every format its parsers support, picking the parser by
// extension. Parse uses the first parser.
type MultiParser []Parser

func (m MultiParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if len(m) == 0 {
		return nil, ErrInvalidTranslations
	}
	return m[0].Parse(ctx, content)
}

func (m MultiParser) SupportsFileExtension(ext string) bool {
	return m.forExtension(ext) != nil
}

func (m MultiParser) forExtension(ext string) Parser {
	for _, p := range m {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// parserFor returns the parser that should read a file with ext.
func parserFor(p Parser, ext string) Parser {
	if mp, ok := p.(MultiParser); ok {
		return mp.forExtension(ext)
	}
	if p.SupportsFileExtension(ext) {
		return p
	}
	return nil
}
