package i18n_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/i18n"
	"github.com/venue-booking-portal/internal/pkg/errors"
)

func TestProvider_T(t *testing.T) {
	p := i18n.NewProvider(domain.LanguageEN, zap.NewNop())

	t.Run("known key", func(t *testing.T) {
		assert.Equal(t, "Explore Venues", p.T("nav.explore"))
	})

	t.Run("missing key returns the key", func(t *testing.T) {
		assert.Equal(t, "nav.doesNotExist", p.T("nav.doesNotExist"))
	})

	t.Run("arabic", func(t *testing.T) {
		require.NoError(t, p.SetLanguage(domain.LanguageAR))
		assert.Equal(t, "استكشف الأماكن", p.T("nav.explore"))
	})
}

func TestProvider_NoCrossLanguageFallback(t *testing.T) {
	translations := map[domain.Language]map[string]string{
		domain.LanguageEN: {"only.en": "English only"},
		domain.LanguageAR: {},
	}
	p := i18n.NewProviderWithTranslations(domain.LanguageAR, translations, zap.NewNop())

	assert.Equal(t, "only.en", p.T("only.en"))
}

func TestProvider_SetLanguage(t *testing.T) {
	p := i18n.NewProvider(domain.LanguageEN, zap.NewNop())

	var notified []domain.Language
	p.Subscribe(func(lang domain.Language) {
		notified = append(notified, lang)
	})

	assert.False(t, p.IsRTL())

	require.NoError(t, p.SetLanguage(domain.LanguageAR))
	assert.True(t, p.IsRTL())
	assert.Equal(t, domain.LanguageAR, p.Language())

	// same language does not notify
	require.NoError(t, p.SetLanguage(domain.LanguageAR))

	err := p.SetLanguage("fr")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidLanguage))
	assert.Equal(t, domain.LanguageAR, p.Language())

	assert.Equal(t, domain.LanguageEN, p.Toggle())
	assert.Equal(t, []domain.Language{domain.LanguageAR, domain.LanguageEN}, notified)
}

func TestProvider_InvalidInitialLanguage(t *testing.T) {
	p := i18n.NewProvider("de", zap.NewNop())
	assert.Equal(t, domain.LanguageEN, p.Language())
}

func TestDocument_FollowsProvider(t *testing.T) {
	p := i18n.NewProvider(domain.LanguageEN, zap.NewNop())
	doc := i18n.NewDocument(p)

	assert.Equal(t, "ltr", doc.Dir())
	assert.Equal(t, "en", doc.Lang())

	require.NoError(t, p.SetLanguage(domain.LanguageAR))
	assert.Equal(t, "rtl", doc.Dir())
	assert.Equal(t, "ar", doc.Lang())

	require.NoError(t, p.SetLanguage(domain.LanguageEN))
	assert.Equal(t, "ltr", doc.Dir())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Language
		ok       bool
	}{
		{"en", domain.LanguageEN, true},
		{"en-US", domain.LanguageEN, true},
		{"ar", domain.LanguageAR, true},
		{"ar-AE", domain.LanguageAR, true},
		{"fr", "", false},
		{"not a tag", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lang, ok := i18n.ParseLanguage(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestLocale_Formatting(t *testing.T) {
	p := i18n.NewProvider(domain.LanguageEN, zap.NewNop())

	en := p.Locale()
	assert.Equal(t, "15 February 2025", en.FormatDate("2025-02-15"))
	assert.Equal(t, "garbage", en.FormatDate("garbage"))
	assert.Equal(t, `This date is reserved for "Sustainability Summit" (EVD-2025-001)`,
		en.Tf("availability.reserved", "Sustainability Summit", "EVD-2025-001"))

	require.NoError(t, p.SetLanguage(domain.LanguageAR))
	ar := p.Locale()
	assert.Equal(t, "15 فبراير 2025", ar.FormatDate("2025-02-15"))
	assert.Equal(t, "rtl", ar.Dir())
	assert.Equal(t, "حديقة اليوبيل", ar.Pick(domain.Text{En: "Jubilee Park", Ar: "حديقة اليوبيل"}))

	// снимок не меняется после переключения
	assert.Equal(t, "ltr", en.Dir())
}

func TestNewLocale(t *testing.T) {
	assert.Equal(t, "Draft Saved", i18n.NewLocale(domain.LanguageEN).T("confirmation.draftTitle"))
	assert.Equal(t, "rtl", i18n.NewLocale(domain.LanguageAR).Dir())
	assert.Equal(t, domain.LanguageEN, i18n.NewLocale("fr").Language)
}
