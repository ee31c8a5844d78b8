package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Translator serves translations loaded through a TranslationAdapter.
// Lookups for a language without translations fall back to the closest
// supported language and then to the default language.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	matcher        *matcher
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.DiscardHandler),
		adapter:     adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the translations from the adapter again and swaps them in.
// On error the current translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(translations); err != nil {
		return err
	}

	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	t.mu.Lock()
	t.translations = translations
	t.matcher = newMatcher(langs)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations for language %s", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// DefaultLanguage returns the language used when a lookup matches nothing.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages returns the languages with translations, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.matcher.langs...)
}

// HasTranslation checks if a translation exists for the exact language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = getTranslation(langMap, key)
	return ok
}

// Lookup returns the raw template stored under key for lang, without
// substituting placeholders. The language is resolved as described on
// Translator. It satisfies the message catalog interface of the validator
// package. Misses are logged at warn level when enabled with
// WithMissingTranslationsLogging.
func (t *Translator) Lookup(lang, key string) (string, bool) {
	if s, ok := t.lookup(lang, key); ok {
		return s, true
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return "", false
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, candidate := range t.candidates(lang) {
		val, ok := getTranslation(t.translations[candidate], key)
		if !ok {
			continue
		}
		if s, ok := stringValue(val); ok {
			return s, true
		}
	}
	return "", false
}

// candidates lists the languages to try for lang, most specific first.
// Callers must hold t.mu.
func (t *Translator) candidates(lang string) []string {
	out := make([]string, 0, 3)
	if _, ok := t.translations[lang]; ok {
		out = append(out, lang)
	}
	if matched, ok := t.matcher.matchString(lang); ok && matched != lang {
		out = append(out, matched)
	}
	if t.defaultLang != lang {
		if _, ok := t.translations[t.defaultLang]; ok {
			out = append(out, t.defaultLang)
		}
	}
	return out
}

// getTranslation resolves key in m. A literal key wins over the nested
// dot-separated traversal, so "validation.not_empty" is found both flat and
// as validation: {not_empty: ...}.
func getTranslation(m map[string]any, key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	if val, ok := m[key]; ok {
		return val, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		if current, ok = asStringMap(next); !ok {
			return nil, false
		}
	}
	return nil, false
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	}
	return nil, false
}

func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}
