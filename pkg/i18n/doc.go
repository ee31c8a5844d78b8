// Package i18n loads translation catalogs and resolves localized strings.
//
// A Translator reads nested key maps through a TranslationAdapter:
// MapAdapter for in-memory data, FileAdapter for a single file and
// FSAdapter for every YAML or JSON file of a directory in an fs.FS such as
// an embed.FS. Keys are dot-separated paths into the nested maps.
//
// Language resolution uses golang.org/x/text/language. A lookup for "de-CH"
// is served by "de-CH" when present, otherwise by the closest supported
// language, otherwise by the default language.
//
// # Usage
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg, ok := tr.Lookup("de-CH", "validation.not_empty")
//
// Translator.Lookup returns templates without substitution and makes a
// Translator usable as the message catalog of the validator package.
// ParseAcceptLanguage picks the best supported language for an
// Accept-Language header.
//
// # Context
//
// WithLocale stores a locale in a context.Context and LocaleFromContext
// reads it back.
//
// # Error Handling
//
// Errors wrap sentinels such as ErrFailedToParseYAML, ErrFailedToReadFile and
// ErrNoTranslationFiles, so callers can match them with errors.Is.
package i18n
