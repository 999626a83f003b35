package server

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"unicode/utf8"

	"github.com/rentany/site/internal/i18n"
	"github.com/rentany/site/internal/layout"
	"github.com/rentany/site/internal/ui"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pageFiles lists the content template of every renderable page.
var pageFiles = map[string]string{
	"home":    "templates/home.html",
	"about":   "templates/about.html",
	"contact": "templates/contact.html",
	"error":   "templates/error.html",
}

var funcs = template.FuncMap{
	"button": func(variant, size string, extra ...string) string {
		return ui.ButtonClass(ui.ButtonVariant(variant), ui.Size(size), extra...)
	},
	"card": func(variant string, extra ...string) string {
		return ui.CardClass(ui.CardVariant(variant), extra...)
	},
	"initial": func(s string) string {
		r, _ := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return ""
		}
		return string(r)
	},
}

// parseTemplates builds one template set per page, each holding the shared
// layout and partials plus the page's own "content" block.
func parseTemplates(assets fs.FS) (map[string]*template.Template, *template.Template, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, file := range pageFiles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(assets,
			"templates/layout.html",
			"templates/partials.html",
			file,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	global, err := template.New("global").ParseFS(assets, "templates/global_error.html")
	if err != nil {
		return nil, nil, fmt.Errorf("parse global error template: %w", err)
	}
	return pages, global, nil
}

// renderError reports a page template that failed to execute.
type renderError struct {
	page string
	err  error
}

func (e *renderError) Error() string {
	return fmt.Sprintf("render %s page: %v", e.page, e.err)
}

func (e *renderError) Unwrap() error {
	return e.err
}

type analytics struct {
	GoogleID string
	VercelID string
}

// pageData is the root value every page template executes against.
type pageData struct {
	Lang        string
	Title       string
	Description string
	Path        string
	Site        SiteInfo
	Analytics   analytics
	Header      layout.Header
	Footer      layout.Footer
	Content     any

	printer *message.Printer
}

// T translates key into the request language.
func (d pageData) T(key string) string {
	return i18n.Translate(d.printer, key)
}

// requestLanguage resolves the language of r and persists an explicit
// choice on w.
func requestLanguage(w http.ResponseWriter, r *http.Request) language.Tag {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return tag
}

func (s *Server) newPageData(w http.ResponseWriter, r *http.Request, title string, content any) pageData {
	tag := requestLanguage(w, r)
	base, _ := tag.Base()
	printer := i18n.Printer(tag)

	description := s.site.Description
	if title != "" {
		title = i18n.Translate(printer, title)
		description = title + " | " + s.site.Description
	}

	return pageData{
		Lang:        base.String(),
		Title:       title,
		Description: description,
		Path:        r.URL.Path,
		Site:        s.site,
		Analytics:   analytics{GoogleID: s.site.GoogleAnalyticsID, VercelID: s.site.VercelAnalyticsID},
		Header:      layout.NewHeader(s.site.Name, r.URL.Path, r.URL.Query()),
		Footer:      layout.NewFooter(s.site.Name, s.site.Description, s.site.ContactEmail, s.now()),
		Content:     content,
		printer:     printer,
	}
}

// render executes page into a buffer and writes it with status. Nothing is
// written when execution fails, so the caller can still render a fallback.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title string, content any) error {
	tmpl, ok := s.pages[page]
	if !ok {
		return &renderError{page: page, err: errors.New("unknown page")}
	}

	data := s.newPageData(w, r, title, content)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return &renderError{page: page, err: err}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("failed to write page", "page", page, "error", err)
	}
	return nil
}

// globalData is the value the global error shell executes against.
type globalData struct {
	AppName   string
	ErrorID   string
	RetryHref string
}

// renderGlobal writes the minimal document shell used when even the error
// page could not be rendered. It falls back to plain text.
func (s *Server) renderGlobal(w http.ResponseWriter, r *http.Request, errorID string) {
	data := globalData{
		AppName:   s.site.Name,
		ErrorID:   errorID,
		RetryHref: retryHref(r),
	}

	var buf bytes.Buffer
	if err := s.global.ExecuteTemplate(&buf, "global", data); err != nil {
		s.logger.Error("failed to render global error page", "error", err)
		http.Error(w, "Application Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buf.WriteTo(w)
}

// retryHref is the target of a "Try Again" action for r. Retrying a POST
// reloads the page rather than resubmitting.
func retryHref(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.RequestURI()
	}
	return r.URL.Path
}
