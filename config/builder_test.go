package config

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rentany/site"
)

func newSite(t *testing.T, cfg *Config, e *Env) *site.Site {
	t.Helper()
	opts, err := BuildOptions(cfg, e)
	if err != nil {
		t.Fatalf("BuildOptions() error = %v", err)
	}
	opts = append(opts, site.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s, err := site.New(opts...)
	if err != nil {
		t.Fatalf("site.New() error = %v", err)
	}
	return s
}

func mustLoadEnv(t *testing.T, environ map[string]string) *Env {
	t.Helper()
	e, err := LoadEnv(environ)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	return e
}

func TestBuildOptions_Defaults(t *testing.T) {
	s := newSite(t, nil, mustLoadEnv(t, nil))

	if s.Port() != 3000 {
		t.Errorf("Port() = %d, want 3000", s.Port())
	}
	if diff := cmp.Diff(site.DefaultSettings(), s.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOptions_FileOverridesEnvironment(t *testing.T) {
	cfg, err := Parse([]byte(`
port: 8081
site:
  name: Rent Any Preview
  support_email: help@rent-any.com
redirects:
  - from: /listings
    to: /
    permanent: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := mustLoadEnv(t, map[string]string{
		"RENT_ANY_APP_NAME":         "Rent Any",
		"RENT_ANY_CONTACT_EMAIL":    "hello@rent-any.com",
		"RENT_ANY_MAINTENANCE_MODE": "true",
	})

	s := newSite(t, cfg, e)

	if s.Port() != 8081 {
		t.Errorf("Port() = %d, want 8081", s.Port())
	}

	want := site.DefaultSettings()
	want.AppName = "Rent Any Preview"
	want.ContactEmail = "hello@rent-any.com"
	want.SupportEmail = "help@rent-any.com"
	want.MaintenanceMode = true
	if diff := cmp.Diff(want, s.Settings()); diff != "" {
		t.Errorf("Settings() mismatch (-want +got):\n%s", diff)
	}

	redirects := s.Redirects()
	last := redirects[len(redirects)-1]
	if diff := cmp.Diff(site.Redirect{From: "/listings", To: "/", Permanent: true}, last); diff != "" {
		t.Errorf("last redirect mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOptions_ProductionMissingKeys(t *testing.T) {
	e := mustLoadEnv(t, map[string]string{"RENT_ANY_ENV": "production"})
	if _, err := BuildOptions(Default(), e); err == nil {
		t.Fatal("BuildOptions() should fail for production without required keys")
	}
}

func TestBuildOptions_NilEnv(t *testing.T) {
	if _, err := BuildOptions(Default(), nil); err == nil {
		t.Fatal("BuildOptions() should require an environment")
	}
}

func TestSettings_EmptyOverridesKeepEnvironment(t *testing.T) {
	e := mustLoadEnv(t, map[string]string{"RENT_ANY_APP_DESCRIPTION": "Rent anything"})
	got := Settings(Default(), e)
	if got.AppDescription != "Rent anything" {
		t.Errorf("AppDescription = %q, want %q", got.AppDescription, "Rent anything")
	}
}

func TestBuildOptions_ContactWebhook(t *testing.T) {
	var hits atomic.Int32
	crm := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") == "secret" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer crm.Close()

	cfg := Default()
	cfg.ContactWebhook = &WebhookConfig{
		URL:     crm.URL,
		Headers: map[string]string{"X-Api-Key": "secret"},
	}
	s := newSite(t, cfg, mustLoadEnv(t, nil))

	form := url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Viewing request"},
		"message": {"I would like to view the flat on Monday."},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if hits.Load() != 1 {
		t.Errorf("webhook received %d authorised deliveries, want 1", hits.Load())
	}
}
