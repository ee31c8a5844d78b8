package i18n

import (
	"slices"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing else is configured.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header length handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best matches an
// Accept-Language value, honouring quality weights and falling back from a
// regional tag to its base language (en-GB to en). It returns defaultLang
// when the header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}
	if lang, ok := newMatcher(supportedLangs).match(tags...); ok {
		return lang
	}
	return defaultLang
}

// matcher wraps language.Matcher with the original spelling of the
// supported languages.
type matcher struct {
	langs   []string
	matcher language.Matcher
}

func newMatcher(langs []string) *matcher {
	valid := make([]string, 0, len(langs))
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			continue
		}
		valid = append(valid, l)
		tags = append(tags, tag)
	}
	return &matcher{langs: slices.Clip(valid), matcher: language.NewMatcher(tags)}
}

func (m *matcher) match(tags ...language.Tag) (string, bool) {
	if len(m.langs) == 0 {
		return "", false
	}
	_, idx, conf := m.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(m.langs) {
		return "", false
	}
	return m.langs[idx], true
}

func (m *matcher) matchString(lang string) (string, bool) {
	if m == nil || lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	return m.match(tag)
}
