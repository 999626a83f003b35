package site

import (
	"net/url"
	"strings"
)

// Environment is the deployment environment the site runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// Valid reports whether e is a known environment.
func (e Environment) Valid() bool {
	switch e {
	case Development, Production, Test:
		return true
	}
	return false
}

// Default site settings, used for any value left empty.
const (
	DefaultAppName        = "Rent Any"
	DefaultAppURL         = "https://rent-any.vercel.app"
	DefaultAppDescription = "Your trusted rental marketplace"
	DefaultContactEmail   = "contact@rent-any.com"
	DefaultSupportEmail   = "support@rent-any.com"
)

// Settings is the public configuration of the site: branding, contact
// addresses, analytics identifiers and feature flags.
type Settings struct {
	AppName           string
	AppURL            string
	AppDescription    string
	ContactEmail      string
	SupportEmail      string
	GoogleAnalyticsID string
	VercelAnalyticsID string

	Environment Environment

	// BetaFeatures enables the JSON contact endpoint.
	BetaFeatures bool
	// MaintenanceMode answers every page with 503.
	MaintenanceMode bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		AppName:        DefaultAppName,
		AppURL:         DefaultAppURL,
		AppDescription: DefaultAppDescription,
		ContactEmail:   DefaultContactEmail,
		SupportEmail:   DefaultSupportEmail,
		Environment:    Development,
	}
}

// BaseURL returns AppURL without a trailing slash.
func (s Settings) BaseURL() string {
	return strings.TrimRight(s.AppURL, "/")
}

// OGImageURL returns the absolute URL of the social preview image.
func (s Settings) OGImageURL() string {
	return s.BaseURL() + "/og-image.png"
}

// ContactLink returns a mailto link for ContactEmail, or "" when unset.
func (s Settings) ContactLink() string { return mailto(s.ContactEmail) }

// SupportLink returns a mailto link for SupportEmail, or "" when unset.
func (s Settings) SupportLink() string { return mailto(s.SupportEmail) }

func mailto(addr string) string {
	if addr == "" {
		return ""
	}
	return (&url.URL{Scheme: "mailto", Opaque: addr}).String()
}

// IsDevelopment reports whether the site runs in development.
func (s Settings) IsDevelopment() bool { return s.Environment == Development }

// IsProduction reports whether the site runs in production.
func (s Settings) IsProduction() bool { return s.Environment == Production }

// withDefaults fills every empty value from [DefaultSettings].
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.AppName == "" {
		s.AppName = d.AppName
	}
	s.AppURL = s.BaseURL()
	if s.AppURL == "" {
		s.AppURL = d.AppURL
	}
	if s.AppDescription == "" {
		s.AppDescription = d.AppDescription
	}
	if s.ContactEmail == "" {
		s.ContactEmail = d.ContactEmail
	}
	if s.SupportEmail == "" {
		s.SupportEmail = d.SupportEmail
	}
	if s.Environment == "" {
		s.Environment = d.Environment
	}
	return s
}
