package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rentany/site"
)

func TestLoadEnv_Defaults(t *testing.T) {
	e, err := LoadEnv(map[string]string{})
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if diff := cmp.Diff(site.DefaultSettings(), e.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(RequiredKeys, e.Missing()); diff != "" {
		t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
	}
	if e.Private.Configured() != nil {
		t.Errorf("Configured() = %v, want none", e.Private.Configured())
	}
}

func TestLoadEnv_AllGroups(t *testing.T) {
	e, err := LoadEnv(map[string]string{
		"RENT_ANY_APP_NAME":             "Rent Any UK",
		"RENT_ANY_APP_URL":              "https://rent-any.co.uk/",
		"RENT_ANY_CONTACT_EMAIL":        "hello@rent-any.co.uk",
		"RENT_ANY_GOOGLE_ANALYTICS_ID":  "G-123",
		"RENT_ANY_ENV":                  " Production ",
		"RENT_ANY_ENABLE_BETA_FEATURES": "true",
		"RENT_ANY_MAINTENANCE_MODE":     "false",
		"RENT_ANY_STRIPE_SECRET_KEY":    "sk_test",
		"RENT_ANY_DATABASE_URL":         "postgres://localhost/rentany",
	})
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	want := site.Settings{
		AppName:           "Rent Any UK",
		AppURL:            "https://rent-any.co.uk",
		AppDescription:    site.DefaultAppDescription,
		ContactEmail:      "hello@rent-any.co.uk",
		SupportEmail:      site.DefaultSupportEmail,
		GoogleAnalyticsID: "G-123",
		Environment:       site.Production,
		BetaFeatures:      true,
	}
	if diff := cmp.Diff(want, e.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
	if len(e.Missing()) != 0 {
		t.Errorf("Missing() = %v, want none", e.Missing())
	}
	wantSecrets := []string{"RENT_ANY_DATABASE_URL", "RENT_ANY_STRIPE_SECRET_KEY"}
	if diff := cmp.Diff(wantSecrets, e.Private.Configured()); diff != "" {
		t.Errorf("Configured() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnv_InvalidFlag(t *testing.T) {
	_, err := LoadEnv(map[string]string{"RENT_ANY_MAINTENANCE_MODE": "sometimes"})
	if err == nil {
		t.Fatal("LoadEnv() should reject a non-boolean flag")
	}
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    []string
	}{
		{"none set", nil, RequiredKeys},
		{
			"blank counts as missing",
			map[string]string{
				"RENT_ANY_APP_NAME":      "Rent Any",
				"RENT_ANY_APP_URL":       "  ",
				"RENT_ANY_CONTACT_EMAIL": "contact@rent-any.com",
			},
			[]string{"RENT_ANY_APP_URL"},
		},
		{
			"all set",
			map[string]string{
				"RENT_ANY_APP_NAME":      "Rent Any",
				"RENT_ANY_APP_URL":       "https://rent-any.vercel.app",
				"RENT_ANY_CONTACT_EMAIL": "contact@rent-any.com",
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, MissingKeys(tt.environ)); diff != "" {
				t.Errorf("MissingKeys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnv_Validate(t *testing.T) {
	tests := []struct {
		name        string
		environ     map[string]string
		wantErr     bool
		wantMissing bool
	}{
		{"development with defaults", map[string]string{}, false, false},
		{"test with defaults", map[string]string{"RENT_ANY_ENV": "test"}, false, false},
		{"production missing keys", map[string]string{"RENT_ANY_ENV": "production"}, true, true},
		{
			"production complete",
			map[string]string{
				"RENT_ANY_ENV":           "production",
				"RENT_ANY_APP_NAME":      "Rent Any",
				"RENT_ANY_APP_URL":       "https://rent-any.vercel.app",
				"RENT_ANY_CONTACT_EMAIL": "contact@rent-any.com",
			},
			false, false,
		},
		{"unknown environment", map[string]string{"RENT_ANY_ENV": "staging"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := LoadEnv(tt.environ)
			if err != nil {
				t.Fatalf("LoadEnv() error = %v", err)
			}
			err = e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrMissingKeys) != tt.wantMissing {
				t.Errorf("errors.Is(err, ErrMissingKeys) = %v, want %v", !tt.wantMissing, tt.wantMissing)
			}
		})
	}
}

func TestNewSiteConfig(t *testing.T) {
	s := site.DefaultSettings()
	s.AppURL = "https://rent-any.vercel.app/"

	want := SiteConfig{
		Name:        "Rent Any",
		Description: "Your trusted rental marketplace",
		URL:         "https://rent-any.vercel.app",
		OGImage:     "https://rent-any.vercel.app/og-image.png",
		ContactLink: "mailto:contact@rent-any.com",
		SupportLink: "mailto:support@rent-any.com",
	}
	if diff := cmp.Diff(want, NewSiteConfig(s)); diff != "" {
		t.Errorf("NewSiteConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSiteConfig_NoSupportEmail(t *testing.T) {
	s := site.DefaultSettings()
	s.SupportEmail = ""
	if got := NewSiteConfig(s).SupportLink; got != "" {
		t.Errorf("SupportLink = %q, want empty", got)
	}
}
