package entity

// Language is a supported display language code.
type Language string

const (
	// LanguageEnglish is the canonical language. Product name and description are written in it.
	LanguageEnglish    Language = "en"
	LanguageChinese    Language = "zh"
	LanguageVietnamese Language = "vi"
)

// CanonicalLanguage is the language of canonical product fields.
const CanonicalLanguage = LanguageEnglish

// SupportedLanguages lists display languages in presentation order. The first is the default.
var SupportedLanguages = []Language{LanguageEnglish, LanguageChinese, LanguageVietnamese}

func (l Language) String() string {
	return string(l)
}

func (l Language) IsSupported() bool {
	for _, supported := range SupportedLanguages {
		if l == supported {
			return true
		}
	}

	return false
}

// OverrideLanguages returns the supported languages that carry per-language overrides.
func OverrideLanguages() []Language {
	out := make([]Language, 0, len(SupportedLanguages)-1)
	for _, l := range SupportedLanguages {
		if l != CanonicalLanguage {
			out = append(out, l)
		}
	}

	return out
}
