package i18n

import (
	"sync"

	"github.com/venue-booking-portal/internal/domain"
)

// Document - атрибуты корневого элемента страницы (dir, lang).
// Обновляется подпиской на Provider при каждом переключении языка.
type Document struct {
	mu   sync.RWMutex
	dir  string
	lang string
}

// NewDocument binds a document to the provider
func NewDocument(p *Provider) *Document {
	d := &Document{}
	d.apply(p.Language())
	p.Subscribe(d.apply)
	return d
}

func (d *Document) apply(lang domain.Language) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dir = lang.Dir()
	d.lang = string(lang)
}

// Dir returns "rtl" or "ltr" for the current language
func (d *Document) Dir() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dir
}

// Lang returns the html lang attribute, "en" or "ar"
func (d *Document) Lang() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lang
}
