package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"

	"github.com/venue-booking-portal/internal/delivery/http/middleware"
	"github.com/venue-booking-portal/internal/domain"
	"github.com/venue-booking-portal/internal/i18n"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page - общие данные шаблона. Locale, Dir, Lang, Path и Organizer
// заполняет Renderer.
type Page struct {
	Locale    i18n.Locale
	Dir       string
	Lang      string
	Title     string
	Nav       string
	Path      string
	Organizer *domain.Organizer
	Toast     string
	Data      interface{}
}

// Renderer - набор шаблонов, по одному на страницу (layout + partials + page)
type Renderer struct {
	pages    map[string]*template.Template
	provider *i18n.Provider
	document *i18n.Document
	logger   *zap.Logger
}

var funcs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"contains": func(list []string, v string) bool {
		for _, item := range list {
			if item == v {
				return true
			}
		}
		return false
	},
	"dict": func(pairs ...interface{}) (map[string]interface{}, error) {
		if len(pairs)%2 != 0 {
			return nil, fmt.Errorf("dict expects key/value pairs")
		}
		m := make(map[string]interface{}, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			k, ok := pairs[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
			}
			m[k] = pairs[i+1]
		}
		return m, nil
	},
	"key": func(parts ...interface{}) string {
		s := make([]string, 0, len(parts))
		for _, p := range parts {
			s = append(s, fmt.Sprint(p))
		}
		return strings.Join(s, ".")
	},
}

// NewRenderer парсит встроенные шаблоны
func NewRenderer(provider *i18n.Provider, document *i18n.Document, logger *zap.Logger) (*Renderer, error) {
	pageFiles, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	r := &Renderer{
		pages:    make(map[string]*template.Template, len(pageFiles)),
		provider: provider,
		document: document,
		logger:   logger,
	}
	for _, file := range pageFiles {
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials/*.html",
			file,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	logger.Debug("Templates loaded", zap.Int("pages", len(r.pages)))
	return r, nil
}

// Render пишет страницу в ответ с указанным статусом
func (r *Renderer) Render(c *fiber.Ctx, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	page.Locale = r.provider.Locale()
	page.Dir = r.document.Dir()
	page.Lang = r.document.Lang()
	page.Organizer = middleware.CurrentOrganizer(c)
	if page.Path == "" {
		page.Path = c.OriginalURL()
	}
	if page.Title != "" {
		page.Title = page.Locale.T(page.Title)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, "layout", page); err != nil {
		r.logger.Error("Failed to render template", zap.String("template", name), zap.Error(err))
		return err
	}

	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	// SetBody копирует, буфер можно вернуть в пул
	c.Response().SetBody(buf.Bytes())
	return nil
}

// Locale - снимок текущего языка для сообщений обработчиков
func (r *Renderer) Locale() i18n.Locale {
	return r.provider.Locale()
}
