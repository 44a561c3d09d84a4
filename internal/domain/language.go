package domain

import "strings"

// Language - язык интерфейса портала
type Language string

const (
	LanguageEN Language = "en"
	LanguageAR Language = "ar"
)

// DefaultLanguage - язык при старте приложения
const DefaultLanguage = LanguageEN

// ValidLanguages returns all supported languages
func ValidLanguages() []Language {
	return []Language{LanguageEN, LanguageAR}
}

// IsValidLanguage checks if the language is supported
func IsValidLanguage(l string) bool {
	for _, lang := range ValidLanguages() {
		if string(lang) == l {
			return true
		}
	}
	return false
}

// IsRTL - арабский пишется справа налево
func (l Language) IsRTL() bool {
	return l == LanguageAR
}

// Dir returns the value for the document dir attribute
func (l Language) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Text - двуязычная строка каталога
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the text for the given language, falling back to English
func (t Text) In(lang Language) string {
	if lang == LanguageAR && t.Ar != "" {
		return t.Ar
	}
	return t.En
}

// ContainsFold reports whether either translation contains the keyword, ignoring case
func (t Text) ContainsFold(keyword string) bool {
	keyword = strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(t.En), keyword) ||
		strings.Contains(strings.ToLower(t.Ar), keyword)
}
