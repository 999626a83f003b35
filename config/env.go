package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/rentany/site"
)

// Env is the environment configuration, read once at startup.
type Env struct {
	Public   PublicEnv
	Private  PrivateEnv
	Features FeatureFlags

	Environment string `env:"RENT_ANY_ENV" envDefault:"development"`

	missing []string
}

// PublicEnv holds values that may be rendered into pages.
type PublicEnv struct {
	AppName           string `env:"RENT_ANY_APP_NAME" envDefault:"Rent Any"`
	AppURL            string `env:"RENT_ANY_APP_URL" envDefault:"https://rent-any.vercel.app"`
	AppDescription    string `env:"RENT_ANY_APP_DESCRIPTION" envDefault:"Your trusted rental marketplace"`
	ContactEmail      string `env:"RENT_ANY_CONTACT_EMAIL" envDefault:"contact@rent-any.com"`
	SupportEmail      string `env:"RENT_ANY_SUPPORT_EMAIL" envDefault:"support@rent-any.com"`
	GoogleAnalyticsID string `env:"RENT_ANY_GOOGLE_ANALYTICS_ID"`
	VercelAnalyticsID string `env:"RENT_ANY_VERCEL_ANALYTICS_ID"`
}

// PrivateEnv holds server-only secrets. None of them are used by the pages
// yet; they are loaded so deployments can be checked with validate.
type PrivateEnv struct {
	APIKey          string `env:"RENT_ANY_API_KEY"`
	DatabaseURL     string `env:"RENT_ANY_DATABASE_URL"`
	SecretKey       string `env:"RENT_ANY_SECRET_KEY"`
	StripePublicKey string `env:"RENT_ANY_STRIPE_PUBLIC_KEY"`
	StripeSecretKey string `env:"RENT_ANY_STRIPE_SECRET_KEY"`
	SendgridAPIKey  string `env:"RENT_ANY_SENDGRID_API_KEY"`
}

// Configured returns the names of the secrets that are set, never their
// values.
func (p PrivateEnv) Configured() []string {
	var names []string
	for _, kv := range []struct {
		key, value string
	}{
		{"RENT_ANY_API_KEY", p.APIKey},
		{"RENT_ANY_DATABASE_URL", p.DatabaseURL},
		{"RENT_ANY_SECRET_KEY", p.SecretKey},
		{"RENT_ANY_STRIPE_PUBLIC_KEY", p.StripePublicKey},
		{"RENT_ANY_STRIPE_SECRET_KEY", p.StripeSecretKey},
		{"RENT_ANY_SENDGRID_API_KEY", p.SendgridAPIKey},
	} {
		if kv.value != "" {
			names = append(names, kv.key)
		}
	}
	return names
}

// FeatureFlags toggles optional behaviour.
type FeatureFlags struct {
	BetaFeatures    bool `env:"RENT_ANY_ENABLE_BETA_FEATURES" envDefault:"false"`
	MaintenanceMode bool `env:"RENT_ANY_MAINTENANCE_MODE" envDefault:"false"`
}

// RequiredKeys must be set explicitly in production.
var RequiredKeys = []string{
	"RENT_ANY_APP_NAME",
	"RENT_ANY_APP_URL",
	"RENT_ANY_CONTACT_EMAIL",
}

// ErrMissingKeys is returned by [Env.Validate] in production when a
// required key is not set.
var ErrMissingKeys = errors.New("missing required environment variables")

// LoadEnv parses environ into an [Env]. Unset keys take their defaults.
func LoadEnv(environ map[string]string) (*Env, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	e.Environment = strings.ToLower(strings.TrimSpace(e.Environment))
	e.missing = MissingKeys(environ)
	return &e, nil
}

// LoadProcessEnv parses the process environment.
func LoadProcessEnv() (*Env, error) {
	return LoadEnv(env.ToMap(os.Environ()))
}

// MissingKeys returns the [RequiredKeys] that are unset or blank in
// environ, in declaration order.
func MissingKeys(environ map[string]string) []string {
	var missing []string
	for _, key := range RequiredKeys {
		if strings.TrimSpace(environ[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Missing returns the required keys that were not set when e was loaded.
func (e *Env) Missing() []string {
	return append([]string(nil), e.missing...)
}

// IsProduction reports whether RENT_ANY_ENV is production.
func (e *Env) IsProduction() bool {
	return site.Environment(e.Environment) == site.Production
}

// Validate checks the loaded environment. An unknown RENT_ANY_ENV is always
// an error. Missing required keys fail only in production; elsewhere the
// defaults are acceptable and the caller should warn.
func (e *Env) Validate() error {
	if !site.Environment(e.Environment).Valid() {
		return fmt.Errorf("RENT_ANY_ENV must be development, production or test, got %q", e.Environment)
	}
	if !e.IsProduction() || len(e.missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(e.missing, ", "))
}

// Settings converts e to site settings.
func (e *Env) Settings() site.Settings {
	return site.Settings{
		AppName:           e.Public.AppName,
		AppURL:            strings.TrimRight(e.Public.AppURL, "/"),
		AppDescription:    e.Public.AppDescription,
		ContactEmail:      e.Public.ContactEmail,
		SupportEmail:      e.Public.SupportEmail,
		GoogleAnalyticsID: e.Public.GoogleAnalyticsID,
		VercelAnalyticsID: e.Public.VercelAnalyticsID,
		Environment:       site.Environment(e.Environment),
		BetaFeatures:      e.Features.BetaFeatures,
		MaintenanceMode:   e.Features.MaintenanceMode,
	}
}

// SiteConfig holds values derived from the public settings.
type SiteConfig struct {
	Name        string
	Description string
	URL         string
	OGImage     string
	ContactLink string
	SupportLink string
}

// NewSiteConfig derives a [SiteConfig] from settings. The pages render
// the same values.
func NewSiteConfig(s site.Settings) SiteConfig {
	return SiteConfig{
		Name:        s.AppName,
		Description: s.AppDescription,
		URL:         s.BaseURL(),
		OGImage:     s.OGImageURL(),
		ContactLink: s.ContactLink(),
		SupportLink: s.SupportLink(),
	}
}
