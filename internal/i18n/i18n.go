// Package i18n resolves the request language and translates user-facing copy.
//
// Messages are keyed by their English text, so English needs no catalog
// entries and untranslated keys fall back to themselves.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "rentany_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
)

var supportedTags = []language.Tag{
	language.English,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the fallback language.
func Default() language.Tag {
	return language.English
}

// Supported returns a copy of the supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the language for r: the lang query parameter first, then
// the preference cookie, then Accept-Language. The bool reports whether the
// choice came from the query and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := match(v); ok {
			return tag, true
		}
	}

	if c, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := match(c.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return matched(tags...), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists tag on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func match(value string) (language.Tag, bool) {
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, _, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return language.Tag{}, false
	}
	return matched(tag), true
}

// matched maps requested tags onto one of the supported base tags.
func matched(tags ...language.Tag) language.Tag {
	_, idx, _ := tagMatcher.Match(tags...)
	return supportedTags[idx]
}
