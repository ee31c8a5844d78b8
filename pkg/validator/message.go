package validator

// MessageSource supplies the template a check turns into a failure message.
type MessageSource interface {
	Template(locale string) string
}

// Catalog looks up localized message templates by key.
// *i18n.Translator satisfies it.
type Catalog interface {
	Lookup(locale, key string) (string, bool)
}

// Literal returns a message source for a fixed template.
func Literal(template string) MessageSource {
	return literalSource(template)
}

type literalSource string

func (s literalSource) Template(string) string { return string(s) }

// Localized returns a message source that reads key from catalog for the
// locale of the current validation, falling back to fallback when the catalog
// has no entry.
func Localized(catalog Catalog, key, fallback string) MessageSource {
	return &localizedSource{catalog: catalog, key: key, fallback: fallback}
}

type localizedSource struct {
	catalog  Catalog
	key      string
	fallback string
}

func (s *localizedSource) Template(locale string) string {
	if s.catalog != nil {
		if tmpl, ok := s.catalog.Lookup(locale, s.key); ok {
			return tmpl
		}
	}
	if s.fallback != "" {
		return s.fallback
	}
	return s.key
}

// MessageKey returns the catalog key used for a check code.
func MessageKey(code string) string {
	return "validation." + code
}
