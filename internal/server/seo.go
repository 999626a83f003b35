package server

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
)

// sitemapPage is one public page listed in the sitemap.
type sitemapPage struct {
	Path       string
	ChangeFreq string
	Priority   string
}

var sitemapPages = []sitemapPage{
	{"/", "weekly", "1.0"},
	{"/about", "monthly", "0.8"},
	{"/contact", "monthly", "0.8"},
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

func (s *Server) baseURL() string {
	return strings.TrimRight(s.site.URL, "/")
}

func (s *Server) handleSitemap(w http.ResponseWriter, _ *http.Request) {
	lastMod := s.now().UTC().Format("2006-01-02")
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range sitemapPages {
		loc := s.baseURL() + p.Path
		if p.Path == "/" {
			loc = s.baseURL()
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode sitemap", "error", err)
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func (s *Server) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", s.baseURL())
}
