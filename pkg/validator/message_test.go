package validator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) Lookup(locale, key string) (string, bool) {
	args := m.Called(locale, key)
	return args.String(0), args.Bool(1)
}

// stockCodes lists the code of every check shipped with the package.
var stockCodes = []string{
	"not_nil", "not_empty", "empty", "predicate",
	"length", "min_length", "max_length", "exact_length",
	"equal", "not_equal", "greater_than", "greater_than_or_equal",
	"less_than", "less_than_or_equal", "inclusive_between", "exclusive_between",
	"one_of", "none_of", "matches", "email", "uuid", "uuid_version",
	"before", "after", "in_past", "in_future", "min_items", "max_items", "tag",
	"url", "url_scheme", "ip", "ipv4", "ipv6", "mac", "phone",
	"alpha", "alphanumeric", "numeric", "slug", "hex",
	"credit_card", "decimal_precision",
	"username", "base64", "domain_name", "subdomain", "semver",
	"password_strength", "password_common", "repeating_chars", "sequential_chars",
}

func TestMessageKey(t *testing.T) {
	assert.Equal(t, "validation.not_empty", validator.MessageKey("not_empty"))
}

func TestLiteral(t *testing.T) {
	src := validator.Literal("fixed {PropertyName}")
	assert.Equal(t, "fixed {PropertyName}", src.Template("de"))
	assert.Equal(t, "fixed {PropertyName}", src.Template(""))
}

func TestLocalized(t *testing.T) {
	t.Run("catalog hit", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "de", "greeting").Return("Hallo", true).Once()

		assert.Equal(t, "Hallo", validator.Localized(cat, "greeting", "Hello").Template("de"))
		cat.AssertExpectations(t)
	})

	t.Run("catalog miss uses fallback", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "ja", "greeting").Return("", false).Once()

		assert.Equal(t, "Hello", validator.Localized(cat, "greeting", "Hello").Template("ja"))
		cat.AssertExpectations(t)
	})

	t.Run("no catalog and no fallback returns the key", func(t *testing.T) {
		assert.Equal(t, "greeting", validator.Localized(nil, "greeting", "").Template("en"))
	})
}

func TestValidatorCatalog(t *testing.T) {
	t.Run("stock messages are looked up by code", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "de", "validation.not_empty").Return("'{PropertyName}' darf nicht leer sein.", true).Once()

		res, err := newCustomerValidator(validator.WithCatalog(cat)).
			ValidateContext(validator.NewContext(customer{Age: 20}, validator.WithLocale("de")))
		require.NoError(t, err)
		assert.Equal(t, []string{"'Name' darf nicht leer sein."}, res.Failures().Get("Name"))
		cat.AssertExpectations(t)
	})

	t.Run("default locale", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "fr", "validation.not_empty").Return("'{PropertyName}' ne doit pas être vide.", true).Once()

		res, err := newCustomerValidator(validator.WithCatalog(cat), validator.WithDefaultLocale("fr")).
			Validate(customer{Age: 20})
		require.NoError(t, err)
		assert.Equal(t, "'Name' ne doit pas être vide.", res.Failures()[0].Message)
		cat.AssertExpectations(t)
	})

	t.Run("missing entry falls back to the default message", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", mock.Anything, mock.Anything).Return("", false)

		res, err := newCustomerValidator(validator.WithCatalog(cat)).Validate(customer{Age: 20})
		require.NoError(t, err)
		assert.Equal(t, "'Name' should not be empty.", res.Failures()[0].Message)
	})

	t.Run("literal message bypasses the catalog", func(t *testing.T) {
		cat := &catalogMock{}
		v := validator.New[customer](validator.WithCatalog(cat))
		validator.RuleFor(v, "Name", func(c customer) string { return c.Name }).
			NotEmpty().
			WithMessage("{PropertyName} is required")

		res, err := v.Validate(customer{})
		require.NoError(t, err)
		assert.Equal(t, "Name is required", res.Failures()[0].Message)
		cat.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})

	t.Run("message key", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "en", "customer.name.required").Return("Tell us your {PropertyName}", true).Once()

		v := validator.New[customer](validator.WithCatalog(cat), validator.WithDefaultLocale("en"))
		validator.RuleFor(v, "Name", func(c customer) string { return c.Name }).
			NotEmpty().
			WithMessageKey("customer.name.required")

		res, err := v.Validate(customer{})
		require.NoError(t, err)
		assert.Equal(t, "Tell us your Name", res.Failures()[0].Message)
		cat.AssertExpectations(t)
	})

	t.Run("locale from context.Context", func(t *testing.T) {
		cat := &catalogMock{}
		cat.On("Lookup", "de", "validation.greater_than_or_equal").
			Return("'{PropertyName}' muss größer oder gleich '{ComparisonValue}' sein.", true).Once()

		ctx := i18n.WithLocale(context.Background(), "de")
		res, err := newCustomerValidator(validator.WithCatalog(cat)).ValidateWith(ctx, customer{Name: "Ann", Age: 3})
		require.NoError(t, err)
		assert.Equal(t, "'Age' muss größer oder gleich '18' sein.", res.Failures()[0].Message)
		cat.AssertExpectations(t)
	})
}

func TestDefaultCatalog(t *testing.T) {
	cat, err := validator.DefaultCatalog(context.Background())
	require.NoError(t, err)

	t.Run("bundled languages", func(t *testing.T) {
		assert.Equal(t, []string{"de", "en", "es", "fr"}, cat.SupportedLanguages())
	})

	t.Run("every stock code is translated", func(t *testing.T) {
		for _, lang := range cat.SupportedLanguages() {
			for _, code := range stockCodes {
				assert.True(t, cat.HasTranslation(lang, validator.MessageKey(code)), "%s: %s", lang, code)
			}
		}
	})

	tests := []struct {
		locale string
		want   string
	}{
		{"en", "'Name' should not be empty."},
		{"de", "'Name' darf nicht leer sein."},
		{"fr-CA", "'Name' ne doit pas être vide."},
		{"es-MX", "'Name' no debería estar vacío."},
		{"ja", "'Name' should not be empty."},
		{"", "'Name' should not be empty."},
	}
	for _, tt := range tests {
		t.Run("locale "+tt.locale, func(t *testing.T) {
			res, err := newCustomerValidator(validator.WithCatalog(cat)).
				ValidateContext(validator.NewContext(customer{Age: 20}, validator.WithLocale(tt.locale)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Failures()[0].Message)
		})
	}

	t.Run("placeholders survive translation", func(t *testing.T) {
		v := validator.New[customer](validator.WithCatalog(cat), validator.WithDefaultLocale("de"))
		validator.RuleFor(v, "Name", func(c customer) string { return c.Name }).Must(validator.MinLength(3))

		res, err := v.Validate(customer{Name: "Al"})
		require.NoError(t, err)
		assert.Equal(t, "Die Länge von 'Name' muss größer oder gleich 3 sein. Sie haben 2 Zeichen eingegeben.",
			res.Failures()[0].Message)
	})
}

func TestAcceptLanguage(t *testing.T) {
	cat, err := validator.DefaultCatalog(context.Background())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		opts   []validator.ContextOption
		want   string
	}{
		{"quality ordering", "ja, es;q=0.9, de;q=0.5", nil, "'Name' no debería estar vacío."},
		{"regional tag", "fr-CA", nil, "'Name' ne doit pas être vide."},
		{"nothing supported uses the default language", "ja, zh", nil, "'Name' should not be empty."},
		{"explicit locale wins", "de", []validator.ContextOption{validator.WithLocale("fr")}, "'Name' ne doit pas être vide."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]validator.ContextOption{validator.WithAcceptLanguage(tt.header)}, tt.opts...)
			res, err := newCustomerValidator(validator.WithCatalog(cat)).
				ValidateContext(validator.NewContext(customer{Age: 20}, opts...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Failures()[0].Message)
		})
	}

	t.Run("default locale is the fallback", func(t *testing.T) {
		res, err := newCustomerValidator(validator.WithCatalog(cat), validator.WithDefaultLocale("de")).
			ValidateContext(validator.NewContext(customer{Age: 20}, validator.WithAcceptLanguage("ja")))
		require.NoError(t, err)
		assert.Equal(t, "'Name' darf nicht leer sein.", res.Failures()[0].Message)
	})

	t.Run("child validators inherit the negotiated locale", func(t *testing.T) {
		child := validator.New[*address](validator.WithCatalog(cat))
		validator.RuleFor(child, "Line1", func(a *address) string { return a.Line1 }).NotEmpty()
		v := validator.New[customer](validator.WithCatalog(cat))
		validator.RuleFor(v, "Address", func(c customer) *address { return c.Address }).SetChild(child)

		res, err := v.ValidateContext(validator.NewContext(customer{Address: &address{}},
			validator.WithAcceptLanguage("de-AT")))
		require.NoError(t, err)
		assert.Equal(t, []string{"'Line1' darf nicht leer sein."}, res.Failures().Get("Address.Line1"))
	})

	t.Run("catalog without languages ignores the header", func(t *testing.T) {
		mc := &catalogMock{}
		mc.On("Lookup", "", "validation.not_empty").Return("", false).Once()

		res, err := newCustomerValidator(validator.WithCatalog(mc)).
			ValidateContext(validator.NewContext(customer{Age: 20}, validator.WithAcceptLanguage("de")))
		require.NoError(t, err)
		assert.Equal(t, "'Name' should not be empty.", res.Failures()[0].Message)
		mc.AssertExpectations(t)
	})
}

func TestLoadCatalog(t *testing.T) {
	writeFile := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("single YAML file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "messages.yaml",
			"en:\n  validation:\n    not_empty: \"Please fill in {PropertyName}.\"\n")

		cat, err := validator.LoadCatalog(context.Background(), path)
		require.NoError(t, err)

		res, err := newCustomerValidator(validator.WithCatalog(cat)).Validate(customer{Age: 20})
		require.NoError(t, err)
		assert.Equal(t, "Please fill in Name.", res.Failures()[0].Message)
	})

	t.Run("directory mixing YAML and JSON", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "en.yml", "en:\n  validation:\n    not_empty: \"{PropertyName} is required.\"\n")
		writeFile(t, dir, "it.json", `{"it": {"validation": {"not_empty": "'{PropertyName}' non deve essere vuoto."}}}`)
		writeFile(t, dir, "README.txt", "ignored")

		cat, err := validator.LoadCatalog(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "it"}, cat.SupportedLanguages())

		res, err := newCustomerValidator(validator.WithCatalog(cat)).
			ValidateContext(validator.NewContext(customer{Age: 20}, validator.WithAcceptLanguage("it-CH")))
		require.NoError(t, err)
		assert.Equal(t, "'Name' non deve essere vuoto.", res.Failures()[0].Message)
	})

	t.Run("unsupported file format", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "messages.toml", "x = 1")
		_, err := validator.LoadCatalog(context.Background(), path)
		assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := validator.LoadCatalog(context.Background(), filepath.Join(t.TempDir(), "absent"))
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})
}
