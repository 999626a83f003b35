package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/rentany/site/internal/ui"
)

// maintenanceRetryAfter is advertised to clients while maintenance mode is on.
const maintenanceRetryAfter = "3600"

// statusRecorder remembers the status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}

// Flush keeps SSE working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

var securityHeaderValues = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "origin-when-cross-origin",
	"X-DNS-Prefetch-Control": "on",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for k, v := range securityHeaderValues {
			h.Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}

// redirect answers requests for configured legacy paths.
func (s *Server) redirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd, ok := s.redirects[r.URL.Path]
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		status := http.StatusTemporaryRedirect
		if rd.Permanent {
			status = http.StatusPermanentRedirect
		}
		http.Redirect(w, r, rd.To, status)
	})
}

// maintenanceExempt paths stay reachable during maintenance.
func maintenanceExempt(path string) bool {
	return path == "/healthz" || path == "/robots.txt" || strings.HasPrefix(path, "/static/")
}

func (s *Server) maintenance(next http.Handler) http.Handler {
	if !s.site.MaintenanceMode {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maintenanceExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Retry-After", maintenanceRetryAfter)
		w.Header().Set("Cache-Control", "no-store")
		err := s.render(w, r, http.StatusServiceUnavailable, "error", "Down for Maintenance", ui.MaintenanceDisplay())
		if err != nil {
			s.fatal(w, r, err)
		}
	})
}

// timing logs every request with its status and duration.
func (s *Server) timing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
