package i18n

import (
	"fmt"
	"strconv"
	"time"

	"github.com/venue-booking-portal/internal/domain"
)

// Locale - снимок языка на время рендеринга одного ответа
type Locale struct {
	Language   domain.Language
	dictionary map[string]string
}

// NewLocale - снимок встроенного словаря для фиксированного языка
func NewLocale(lang domain.Language) Locale {
	if !domain.IsValidLanguage(string(lang)) {
		lang = domain.DefaultLanguage
	}
	return Locale{Language: lang, dictionary: defaultTranslations()[lang]}
}

// T returns the translation or the key verbatim, never the other language
func (l Locale) T(key string) string {
	if v, ok := l.dictionary[key]; ok && v != "" {
		return v
	}
	return key
}

// Tf formats a translated pattern
func (l Locale) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(l.T(key), args...)
}

// Pick selects the catalog text for this locale
func (l Locale) Pick(text domain.Text) string {
	return text.In(l.Language)
}

func (l Locale) IsRTL() bool {
	return l.Language.IsRTL()
}

func (l Locale) Dir() string {
	return l.Language.Dir()
}

func (l Locale) Lang() string {
	return string(l.Language)
}

// FormatDate renders "2025-02-15" as "15 February 2025"; unparsable input is returned as is
func (l Locale) FormatDate(date string) string {
	t, err := time.Parse(domain.BookingDateLayout, date)
	if err != nil {
		return date
	}
	return l.FormatTime(t)
}

// FormatTime renders the calendar day of t
func (l Locale) FormatTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), l.T("month."+strconv.Itoa(int(t.Month()))), t.Year())
}

// Capacity formats a capacity record for this locale
func (l Locale) Capacity(c domain.Capacity) string {
	return domain.FormatCapacity(c, l.IsRTL())
}

// FacilityType returns the localized facility type label
func (l Locale) FacilityType(t domain.FacilityType) string {
	return domain.FacilityTypeLabel(t, l.IsRTL())
}

// Status returns the localized booking status label
func (l Locale) Status(s domain.BookingStatus) string {
	return s.Label(l.IsRTL())
}

// Number formats an integer with thousands separators
func (l Locale) Number(n int) string {
	return domain.FormatNumber(n)
}
