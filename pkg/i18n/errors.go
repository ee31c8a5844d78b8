package i18n

import "errors"

var (
	ErrNilAdapter          = errors.New("translation adapter is nil")
	ErrInvalidTranslations = errors.New("invalid translations")

	// Parsing
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")

	// Loading
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")
	ErrFailedToReadDirectory = errors.New("failed to read translation directory")
	ErrNoTranslationFiles    = errors.New("no translation files found")
	ErrUnsupportedFormat     = errors.New("unsupported translation file format")
)
