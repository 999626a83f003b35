package config

import (
	"errors"

	"github.com/rentany/site"
	"github.com/rentany/site/contact"
)

// BuildOptions converts the file configuration and the environment into
// site options.
//
// Site values from the file override the environment. The environment is
// validated first, so a production deployment with missing required keys
// fails here.
func BuildOptions(cfg *Config, e *Env) ([]site.Option, error) {
	if cfg == nil {
		cfg = Default()
	}
	if e == nil {
		return nil, errors.New("environment is required")
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	opts := []site.Option{
		site.WithSettings(Settings(cfg, e)),
		site.WithPort(cfg.Port),
		site.WithSubmitDelay(cfg.Delay()),
	}

	if cfg.ReportBuffer > 0 {
		opts = append(opts, site.WithReportBuffer(cfg.ReportBuffer))
	}

	for _, rd := range cfg.Redirects {
		opts = append(opts, site.WithRedirect(rd.From, rd.To, rd.Permanent))
	}

	if wh := cfg.ContactWebhook; wh != nil {
		opts = append(opts, site.WithSubmitter(
			contact.NewWebhookSubmitter(wh.URL, wh.Headers, wh.Timeout.Duration()),
		))
	}

	return opts, nil
}

// Settings merges the environment with the file's site overrides.
func Settings(cfg *Config, e *Env) site.Settings {
	s := e.Settings()
	o := cfg.Site
	if o.Name != "" {
		s.AppName = o.Name
	}
	if o.URL != "" {
		s.AppURL = o.URL
	}
	if o.Description != "" {
		s.AppDescription = o.Description
	}
	if o.ContactEmail != "" {
		s.ContactEmail = o.ContactEmail
	}
	if o.SupportEmail != "" {
		s.SupportEmail = o.SupportEmail
	}
	return s
}
