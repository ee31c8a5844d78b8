package i18n_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"items": map[string]any{
				"zero":  "No items",
				"one":   "%{count} item",
				"other": "%{count} items",
			},
			"validation": map[string]any{
				"not_empty": "'{PropertyName}' must not be empty.",
				"length":    "'{PropertyName}' has the wrong length.",
			},
			"only.flat": "Flat key",
		},
		"de": {
			"hello": "Hallo",
			"validation": map[string]any{
				"not_empty": "'{PropertyName}' darf nicht leer sein.",
			},
		},
		"pt-BR": {
			"hello": "Olá",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Run("nil adapter", func(t *testing.T) {
		tr, err := i18n.NewTranslator(context.Background(), nil)
		assert.Nil(t, tr)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("logs loaded languages", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(slog.NewJSONHandler(buf, nil))
		newTestTranslator(t, i18n.WithLogger(log))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "translations loaded", entry["msg"])
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"de", "en", "pt-BR"}, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.DefaultLanguage())
	})
}

func TestTranslatorLookup(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name   string
		lang   string
		key    string
		want   string
		wantOK bool
	}{
		{"exact language", "de", "hello", "Hallo", true},
		{"nested key", "de", "validation.not_empty", "'{PropertyName}' darf nicht leer sein.", true},
		{"regional tag falls back to base", "de-CH", "hello", "Hallo", true},
		{"base tag matches regional language", "pt", "hello", "Olá", true},
		{"missing key falls back to default language", "de", "validation.length", "'{PropertyName}' has the wrong length.", true},
		{"unknown language falls back to default", "ja", "hello", "Hello", true},
		{"empty language falls back to default", "", "hello", "Hello", true},
		{"flat key with dots", "en", "only.flat", "Flat key", true},
		{"map value is not a template", "en", "items", "", false},
		{"missing everywhere", "de", "nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Lookup(tt.lang, tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslatorLookupLogsMisses(t *testing.T) {
	t.Run("logs missing key with language", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		tr := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))

		_, ok := tr.Lookup("de", "validation.unknown")
		require.False(t, ok)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "translation not found", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "de", entry["lang"])
		assert.Equal(t, "validation.unknown", entry["key"])
	})

	t.Run("hits are not logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		tr := newTestTranslator(t, i18n.WithLogger(log), i18n.WithMissingTranslationsLogging(true))

		_, ok := tr.Lookup("de-CH", "hello")
		require.True(t, ok)
		assert.Empty(t, buf.String())
	})

	t.Run("silent by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
		tr := newTestTranslator(t, i18n.WithLogger(log))

		_, ok := tr.Lookup("en", "nope")
		require.False(t, ok)
		assert.Empty(t, buf.String())
	})
}

func TestTranslatorHasTranslation(t *testing.T) {
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("en", "validation.length"))
	assert.True(t, tr.HasTranslation("de", "validation.not_empty"))
	assert.False(t, tr.HasTranslation("de", "validation.length"))
	assert.False(t, tr.HasTranslation("fr", "hello"))
}

func TestTranslatorReload(t *testing.T) {
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": {"hello": "Hello"}}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	adapter.Data = map[string]map[string]any{
		"en": {"hello": "Hi"},
		"fr": {"hello": "Salut"},
	}
	require.NoError(t, tr.Reload(context.Background()))

	got, ok := tr.Lookup("en", "hello")
	assert.True(t, ok)
	assert.Equal(t, "Hi", got)
	got, ok = tr.Lookup("fr", "hello")
	assert.True(t, ok)
	assert.Equal(t, "Salut", got)
	assert.Equal(t, []string{"en", "fr"}, tr.SupportedLanguages())
}
