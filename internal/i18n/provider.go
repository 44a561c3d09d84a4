package i18n

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/pkg/errors"
)

var (
	supportedTags = []language.Tag{language.English, language.Arabic}
	supportedLang = []domain.Language{domain.LanguageEN, domain.LanguageAR}
	matcher       = language.NewMatcher(supportedTags)
)

// ParseLanguage maps a BCP 47 tag ("ar", "ar-AE", "en-US") to a supported language
func ParseLanguage(s string) (domain.Language, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return supportedLang[idx], true
}

// Subscriber получает новый язык после каждого переключения
type Subscriber func(lang domain.Language)

// Provider - общее для процесса состояние языка.
// Меняется только через SetLanguage, подписчики уведомляются синхронно.
type Provider struct {
	mu           sync.RWMutex
	language     domain.Language
	translations map[domain.Language]map[string]string
	subscribers  []Subscriber
	logger       *zap.Logger
}

// NewProvider creates a provider with the built-in dictionaries
func NewProvider(initial domain.Language, logger *zap.Logger) *Provider {
	return NewProviderWithTranslations(initial, defaultTranslations(), logger)
}

// NewProviderWithTranslations creates a provider over custom dictionaries
func NewProviderWithTranslations(
	initial domain.Language,
	translations map[domain.Language]map[string]string,
	logger *zap.Logger,
) *Provider {
	if !domain.IsValidLanguage(string(initial)) {
		initial = domain.DefaultLanguage
	}
	return &Provider{
		language:     initial,
		translations: translations,
		logger:       logger,
	}
}

// Language returns the current language
func (p *Provider) Language() domain.Language {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.language
}

// IsRTL reports whether the current language is written right to left
func (p *Provider) IsRTL() bool {
	return p.Language().IsRTL()
}

// T returns the translation for the current language or the key itself
func (p *Provider) T(key string) string {
	return p.Locale().T(key)
}

// Subscribe registers a callback for language changes
func (p *Provider) Subscribe(fn Subscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, fn)
}

// SetLanguage switches the language and notifies subscribers when it changed
func (p *Provider) SetLanguage(lang domain.Language) error {
	if !domain.IsValidLanguage(string(lang)) {
		return errors.ErrInvalidLanguage.WithDetails(map[string]interface{}{
			"language": string(lang),
		})
	}

	p.mu.Lock()
	if p.language == lang {
		p.mu.Unlock()
		return nil
	}
	p.language = lang
	subscribers := make([]Subscriber, len(p.subscribers))
	copy(subscribers, p.subscribers)
	p.mu.Unlock()

	p.logger.Info("Language switched", zap.String("language", string(lang)))

	for _, fn := range subscribers {
		fn(lang)
	}
	return nil
}

// Toggle switches between English and Arabic
func (p *Provider) Toggle() domain.Language {
	next := domain.LanguageAR
	if p.Language() == domain.LanguageAR {
		next = domain.LanguageEN
	}
	_ = p.SetLanguage(next)
	return next
}

// Locale returns an immutable snapshot for rendering one response
func (p *Provider) Locale() Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Locale{
		Language:   p.language,
		dictionary: p.translations[p.language],
	}
}
