package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/contact"
	"github.com/rentany/site/internal/store"
)

const (
	// sseWriteTimeout is the maximum time allowed for a single SSE write operation.
	// Must be <= shutdownTimeout so streams cannot hold up shutdown.
	sseWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second

	// maxContactBody bounds contact form bodies, both form and JSON encoded.
	maxContactBody = 64 << 10
)

// SiteInfo is the public site configuration the pages render. Derived
// values (OGImage and the mailto links) are computed by the caller.
type SiteInfo struct {
	Name         string
	Description  string
	URL          string
	OGImage      string
	ContactEmail string
	ContactLink  string
	SupportEmail string
	SupportLink  string

	GoogleAnalyticsID string
	VercelAnalyticsID string

	Development     bool
	BetaFeatures    bool
	MaintenanceMode bool
}

// Redirect maps an exact request path to another location.
type Redirect struct {
	From      string
	To        string
	Permanent bool
}

// Config carries everything [NewServer] needs.
type Config struct {
	Port      int
	Site      SiteInfo
	// Assets holds templates/*.html and static/*.
	Assets    fs.FS
	Submitter contact.Submitter
	Errors    *apperr.Handler
	// Reports backs the development error endpoints. May be nil.
	Reports   store.Store
	Redirects []Redirect
	// OnSubmit is called after a contact submission succeeded. May be nil.
	OnSubmit  func(contact.Form)
	Logger    *slog.Logger
	// Now defaults to time.Now.
	Now       func() time.Time
}

// Server handles HTTP requests for the site pages and API.
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	site       SiteInfo
	port       int
	httpServer *http.Server
	assets     fs.FS
	pages      map[string]*template.Template
	global     *template.Template
	submitter  contact.Submitter
	errors     *apperr.Handler
	reports    store.Store
	redirects  map[string]Redirect
	onSubmit   func(contact.Form)
	logger     *slog.Logger
	now        func() time.Time
}

// NewServer parses the page templates and returns a [Server]. The server is
// not started until [Server.Start] is called.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Assets == nil {
		return nil, errors.New("server: assets are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	submitter := cfg.Submitter
	if submitter == nil {
		submitter = contact.SimulatedSubmitter{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	pages, global, err := parseTemplates(cfg.Assets)
	if err != nil {
		return nil, err
	}

	redirects := make(map[string]Redirect, len(cfg.Redirects))
	for _, rd := range cfg.Redirects {
		redirects[rd.From] = rd
	}

	return &Server{
		site:      cfg.Site,
		port:      cfg.Port,
		assets:    cfg.Assets,
		pages:     pages,
		global:    global,
		submitter: submitter,
		errors:    cfg.Errors,
		reports:   cfg.Reports,
		redirects: redirects,
		onSubmit:  cfg.OnSubmit,
		logger:    logger,
		now:       now,
	}, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(s.assets, "static")
	if err == nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /sitemap.xml", s.handleSitemap)
	mux.HandleFunc("GET /robots.txt", s.handleRobots)
	mux.HandleFunc("POST /api/contact", s.handleContactAPI)

	if s.site.Development {
		mux.HandleFunc("GET /api/errors", s.handleErrors)
		mux.HandleFunc("GET /api/errors/stream", s.handleErrorStream)
	}

	mux.Handle("GET /{$}", s.page(s.handleHome))
	mux.Handle("GET /about", s.page(s.handleAbout))
	mux.Handle("GET /contact", s.page(s.handleContact))
	mux.Handle("POST /contact", s.page(s.handleContactSubmit))
	mux.Handle("/", s.page(s.handleNotFound))

	var h http.Handler = mux
	h = s.maintenance(h)
	h = s.redirect(h)
	if s.site.Development {
		h = s.timing(h)
	}
	h = securityHeaders(h)
	return s.globalBoundary(h)
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start returns once the listener is bound. The server runs until ctx is
// cancelled, then shuts down gracefully with a 5-second timeout.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.port, err)
	}

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts end with ctx, which also stops SSE streams
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("http server listening", "addr", ln.Addr().String())

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte("ok\n"))
}
