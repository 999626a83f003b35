package site

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/contact"
	"github.com/rentany/site/internal/server"
	"github.com/rentany/site/internal/store"
	"github.com/rentany/site/web"
)

const (
	defaultPort         = 3000
	defaultReportBuffer = store.DefaultCapacity
)

// defaultRedirects keep the product's former name working.
var defaultRedirects = []Redirect{
	{From: "/rentpal", To: "/", Permanent: true},
	{From: "/rent-pal", To: "/", Permanent: true},
}

// Site is the Rent Any web site: pages, contact form and error handling.
//
// It is created using [New] with functional options and started with
// [Site.Start]. The typical lifecycle is:
//
//	s, err := site.New(site.WithPort(8080))
//	if err != nil {
//	    slog.Error("failed to create site", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	s.Start(ctx) // blocks until context cancelled
type Site struct {
	settings  Settings
	port      int
	redirects []Redirect
	logger    *slog.Logger
	reports   *store.MemoryStore
	errors    *apperr.Handler
	submitter contact.Submitter
	server    *server.Server
}

// New creates a new [Site] with the given options.
//
// Defaults:
//   - Settings: [DefaultSettings]
//   - Port: 3000
//   - Submit delay: one second
//   - Redirects: /rentpal and /rent-pal to / (permanent)
//   - Report buffer: 100
//
// Returns an error if any option is invalid or the embedded templates fail
// to parse.
func New(opts ...Option) (*Site, error) {
	cfg := &siteConfig{
		settings:     DefaultSettings(),
		port:         defaultPort,
		submitDelay:  contact.DefaultSubmitDelay,
		redirects:    append([]Redirect(nil), defaultRedirects...),
		reportBuffer: defaultReportBuffer,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	submitter := cfg.submitter
	if submitter == nil {
		delay := cfg.submitDelay
		if delay == 0 {
			delay = -1 // no wait
		}
		submitter = contact.SimulatedSubmitter{Delay: delay}
	}

	reports := store.NewMemoryStore(cfg.reportBuffer)
	errs := &apperr.Handler{
		Logger:      logger,
		Development: cfg.settings.IsDevelopment(),
		Reporting:   cfg.settings.IsProduction(),
		Sink:        reports,
	}

	s := &Site{
		settings:  cfg.settings,
		port:      cfg.port,
		redirects: cfg.redirects,
		logger:    logger,
		reports:   reports,
		errors:    errs,
		submitter: submitter,
	}

	callbacks := cfg.submissionCallbacks
	var onSubmit func(contact.Form)
	if len(callbacks) > 0 {
		onSubmit = func(f contact.Form) {
			sub := Submission{Form: f, ReceivedAt: time.Now()}
			for _, cb := range callbacks {
				invokeCallbackSafe(cb, sub, logger)
			}
		}
	}

	srv, err := server.NewServer(server.Config{
		Port:      cfg.port,
		Site:      s.siteInfo(),
		Assets:    web.Assets,
		Submitter: submitter,
		Errors:    errs,
		Reports:   reports,
		Redirects: toServerRedirects(cfg.redirects),
		OnSubmit:  onSubmit,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}
	s.server = srv

	return s, nil
}

func (s *Site) siteInfo() server.SiteInfo {
	st := s.settings
	return server.SiteInfo{
		Name:              st.AppName,
		Description:       st.AppDescription,
		URL:               st.BaseURL(),
		OGImage:           st.OGImageURL(),
		ContactEmail:      st.ContactEmail,
		ContactLink:       st.ContactLink(),
		SupportEmail:      st.SupportEmail,
		SupportLink:       st.SupportLink(),
		GoogleAnalyticsID: st.GoogleAnalyticsID,
		VercelAnalyticsID: st.VercelAnalyticsID,
		Development:       st.IsDevelopment(),
		BetaFeatures:      st.BetaFeatures,
		MaintenanceMode:   st.MaintenanceMode,
	}
}

func toServerRedirects(rds []Redirect) []server.Redirect {
	out := make([]server.Redirect, len(rds))
	for i, rd := range rds {
		out[i] = server.Redirect{From: rd.From, To: rd.To, Permanent: rd.Permanent}
	}
	return out
}

// Start serves the site until ctx is cancelled.
//
// Start is a blocking call. Returns nil on graceful shutdown and an error if
// the HTTP server fails to start. A submitter with a Close method, such as
// [contact.WebhookSubmitter], is closed when Start returns.
func (s *Site) Start(ctx context.Context) error {
	defer s.closeSubmitter()

	s.logger.Info("site starting",
		"name", s.settings.AppName,
		"environment", string(s.settings.Environment),
	)
	s.logger.Info("site available", "url", fmt.Sprintf("http://localhost:%d", s.port))
	if s.settings.MaintenanceMode {
		s.logger.Warn("maintenance mode enabled")
	}

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	if err := s.server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	s.logger.Info("site stopped")
	return nil
}

func (s *Site) closeSubmitter() {
	if c, ok := s.submitter.(interface{ Close() }); ok {
		c.Close()
	}
}

// Handler returns the site's HTTP handler, for embedding the site in
// another server or for tests.
func (s *Site) Handler() http.Handler {
	return s.server.Handler()
}

// Port returns the configured HTTP port.
func (s *Site) Port() int {
	return s.port
}

// Settings returns the effective site settings.
func (s *Site) Settings() Settings {
	return s.settings
}

// Redirects returns a copy of the configured redirects.
func (s *Site) Redirects() []Redirect {
	cp := make([]Redirect, len(s.redirects))
	copy(cp, s.redirects)
	return cp
}

// RecentErrors returns the most recent error reports, newest first.
func (s *Site) RecentErrors() []apperr.Report {
	return s.reports.Recent()
}
