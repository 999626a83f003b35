// Package layout builds the header and footer chrome rendered around every page.
package layout

import (
	"net/url"
	"strings"
	"time"
)

// MenuParam is the query parameter carrying the mobile menu state.
const MenuParam = "menu"

// NavItem is a single navigation link.
type NavItem struct {
	Name string
	Href string
}

// Navigation is the primary site navigation.
var Navigation = []NavItem{
	{Name: "Home", Href: "/"},
	{Name: "About", Href: "/about"},
	{Name: "Contact", Href: "/contact"},
}

// Header is the per-render header state. MenuOpen belongs to this header
// instance only; toggling it produces a link, not a shared mutation.
type Header struct {
	Brand    string
	Items    []NavItem
	Path     string
	Query    url.Values
	MenuOpen bool
}

// NewHeader builds the header for a request to path with query.
func NewHeader(brand, path string, query url.Values) Header {
	return Header{
		Brand:    brand,
		Items:    Navigation,
		Path:     path,
		Query:    query,
		MenuOpen: query.Get(MenuParam) == "open",
	}
}

// IsActive reports whether item points at the current page. The home link
// only matches "/" exactly.
func (h Header) IsActive(item NavItem) bool {
	if item.Href == "/" {
		return h.Path == "/"
	}
	return h.Path == item.Href || strings.HasPrefix(h.Path, item.Href+"/")
}

// ToggleHref is the current URL with the menu state flipped.
func (h Header) ToggleHref() string {
	q := url.Values{}
	for k, v := range h.Query {
		q[k] = append([]string(nil), v...)
	}
	if h.MenuOpen {
		q.Del(MenuParam)
	} else {
		q.Set(MenuParam, "open")
	}

	path := h.Path
	if path == "" {
		path = "/"
	}
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// FooterSection is a titled column of footer links.
type FooterSection struct {
	Title string
	Links []NavItem
}

// Footer is the static footer content.
type Footer struct {
	Brand        string
	Description  string
	ContactEmail string
	Sections     []FooterSection
	Legal        []NavItem
	Year         int
}

// FooterSections are the footer link columns.
var FooterSections = []FooterSection{
	{
		Title: "Company",
		Links: []NavItem{
			{Name: "About", Href: "/about"},
			{Name: "Contact", Href: "/contact"},
			{Name: "Careers", Href: "/careers"},
		},
	},
	{
		Title: "Services",
		Links: []NavItem{
			{Name: "Find Rentals", Href: "/rentals"},
			{Name: "List Property", Href: "/list"},
			{Name: "Property Management", Href: "/management"},
		},
	},
	{
		Title: "Support",
		Links: []NavItem{
			{Name: "Help Center", Href: "/help"},
			{Name: "Privacy Policy", Href: "/privacy"},
			{Name: "Terms of Service", Href: "/terms"},
		},
	},
}

// LegalLinks are shown in the footer's bottom bar.
var LegalLinks = []NavItem{
	{Name: "Privacy", Href: "/privacy"},
	{Name: "Terms", Href: "/terms"},
	{Name: "Cookies", Href: "/cookies"},
}

// NewFooter builds the footer; now supplies the copyright year.
func NewFooter(brand, description, contactEmail string, now time.Time) Footer {
	return Footer{
		Brand:        brand,
		Description:  description,
		ContactEmail: contactEmail,
		Sections:     FooterSections,
		Legal:        LegalLinks,
		Year:         now.Year(),
	}
}
