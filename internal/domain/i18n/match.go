package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"brewmenu/internal/domain/entity"
)

var (
	supportedTags = []language.Tag{language.English, language.Chinese, language.Vietnamese}
	tagLanguages  = []entity.Language{entity.LanguageEnglish, entity.LanguageChinese, entity.LanguageVietnamese}
	matcher       = language.NewMatcher(supportedTags)
)

// Parse maps a single language code or BCP 47 tag ("zh", "zh-Hant-TW", "vi_VN") onto a supported language.
// The boolean is false when nothing matches.
func Parse(raw string) (entity.Language, bool) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "_", "-"))
	if raw == "" {
		return "", false
	}

	if l := entity.Language(strings.ToLower(raw)); l.IsSupported() {
		return l, true
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}

	return match(tag)
}

// FromAcceptLanguage negotiates an Accept-Language header against the supported languages.
func FromAcceptLanguage(header string) (entity.Language, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	return match(tags...)
}

// Resolve picks the first candidate that maps to a supported language, otherwise the default.
func Resolve(candidates ...string) entity.Language {
	for _, c := range candidates {
		if l, ok := Parse(c); ok {
			return l
		}
	}

	return DefaultLanguage
}

func match(tags ...language.Tag) (entity.Language, bool) {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(tagLanguages) {
		return "", false
	}

	return tagLanguages[index], true
}
