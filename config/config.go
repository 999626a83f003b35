// Package config loads the Rent Any site configuration.
//
// Settings come from two places. RENT_ANY_* environment variables carry the
// public site values, secrets and feature flags (see [Env]). An optional
// YAML file carries deployment tuning:
//
//	port: 3000
//	submit_delay: 1s
//	report_buffer: 100
//
//	site:
//	  url: ${PUBLIC_URL:-https://rent-any.vercel.app}
//
//	redirects:
//	  - from: /listings
//	    to: /
//	    permanent: true
//
//	contact_webhook:
//	  url: https://crm.example.com/intake
//	  timeout: 5s
//	  headers:
//	    Authorization: "Bearer ${RENT_ANY_API_KEY}"
//
// Values from the file's site block override the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort        = 3000
	defaultSubmitDelay = time.Second

	// maxSubmitDelay keeps a misconfigured delay from hanging requests.
	maxSubmitDelay = 30 * time.Second
)

// Config is the root structure of the YAML configuration file.
//
// Use [Load] or [Parse] to create a Config from YAML, or [Default] when
// there is no file.
type Config struct {
	// Port is the HTTP server port. Defaults to 3000.
	Port int `yaml:"port"`

	// SubmitDelay is the simulated latency of contact form submissions.
	// Defaults to 1s. "0s" disables the wait.
	SubmitDelay *Duration `yaml:"submit_delay"`

	// ReportBuffer is the number of recent error reports kept in memory.
	// Zero keeps the site default.
	ReportBuffer int `yaml:"report_buffer"`

	// Site overrides public values otherwise read from the environment.
	Site SiteOverrides `yaml:"site"`

	// Redirects are added to the built-in redirects.
	Redirects []RedirectConfig `yaml:"redirects"`

	// ContactWebhook, when set, delivers contact forms over HTTP instead of
	// simulating the submission.
	ContactWebhook *WebhookConfig `yaml:"contact_webhook"`
}

// WebhookConfig describes where contact forms are posted.
type WebhookConfig struct {
	// URL must be http or https. Supports ${VAR} substitution.
	URL string `yaml:"url"`

	// Timeout per delivery. Defaults to 5s.
	Timeout Duration `yaml:"timeout"`

	// Headers are sent with every delivery. Values support ${VAR}
	// substitution, e.g. "Bearer ${RENT_ANY_API_KEY}".
	Headers map[string]string `yaml:"headers"`
}

// SiteOverrides replaces individual public site values. Empty fields keep
// the environment value. All fields support ${VAR} substitution.
type SiteOverrides struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	Description  string `yaml:"description"`
	ContactEmail string `yaml:"contact_email"`
	SupportEmail string `yaml:"support_email"`
}

// RedirectConfig maps an exact request path to another location.
type RedirectConfig struct {
	From string `yaml:"from"`
	// To is a path or an absolute http(s) URL. Supports ${VAR} substitution.
	To        string `yaml:"to"`
	Permanent bool   `yaml:"permanent"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Delay returns the configured submit delay, or the default when unset.
func (c *Config) Delay() time.Duration {
	if c.SubmitDelay == nil {
		return defaultSubmitDelay
	}
	return c.SubmitDelay.Duration()
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Port: defaultPort}
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before validation.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in site values and redirect targets.
// Port defaults to 3000.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if d := c.Delay(); d < 0 || d > maxSubmitDelay {
		return fmt.Errorf("submit_delay must be between 0s and %s, got %s", maxSubmitDelay, d)
	}

	if c.ReportBuffer < 0 {
		return fmt.Errorf("report_buffer cannot be negative, got %d", c.ReportBuffer)
	}

	site := []struct {
		key   string
		field *string
	}{
		{"name", &c.Site.Name},
		{"url", &c.Site.URL},
		{"description", &c.Site.Description},
		{"contact_email", &c.Site.ContactEmail},
		{"support_email", &c.Site.SupportEmail},
	}
	for _, f := range site {
		expanded, err := expandEnvVars(*f.field)
		if err != nil {
			return fmt.Errorf("site.%s: %w", f.key, err)
		}
		*f.field = strings.TrimSpace(expanded)
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")
	if c.Site.URL != "" {
		if err := validateAbsoluteURL(c.Site.URL); err != nil {
			return fmt.Errorf("site.url: %w", err)
		}
	}

	seen := make(map[string]struct{}, len(c.Redirects))
	for i := range c.Redirects {
		rd := &c.Redirects[i]

		if !strings.HasPrefix(rd.From, "/") {
			return fmt.Errorf("redirects[%d]: from must be an absolute path, got %q", i, rd.From)
		}
		if _, dup := seen[rd.From]; dup {
			return fmt.Errorf("redirects[%d]: duplicate from %q", i, rd.From)
		}
		seen[rd.From] = struct{}{}

		expanded, err := expandEnvVars(rd.To)
		if err != nil {
			return fmt.Errorf("redirects[%d] (%s): to: %w", i, rd.From, err)
		}
		rd.To = expanded

		if rd.To == "" {
			return fmt.Errorf("redirects[%d] (%s): to is required", i, rd.From)
		}
		if !strings.HasPrefix(rd.To, "/") {
			if err := validateAbsoluteURL(rd.To); err != nil {
				return fmt.Errorf("redirects[%d] (%s): to: %w", i, rd.From, err)
			}
		}
	}

	if c.ContactWebhook != nil {
		if err := c.ContactWebhook.expandAndValidate(); err != nil {
			return fmt.Errorf("contact_webhook: %w", err)
		}
	}

	return nil
}

func (w *WebhookConfig) expandAndValidate() error {
	expanded, err := expandEnvVars(w.URL)
	if err != nil {
		return fmt.Errorf("url: %w", err)
	}
	w.URL = strings.TrimSpace(expanded)
	if w.URL == "" {
		return errors.New("url is required")
	}
	if err := validateAbsoluteURL(w.URL); err != nil {
		return fmt.Errorf("url: %w", err)
	}

	if w.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative, got %s", w.Timeout.Duration())
	}

	keys := make([]string, 0, len(w.Headers))
	for key := range w.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		expanded, err := expandEnvVars(w.Headers[key])
		if err != nil {
			return fmt.Errorf("headers[%s]: %w", key, err)
		}
		w.Headers[key] = expanded
	}
	return nil
}

// validateAbsoluteURL checks that raw is an http or https URL.
func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
