package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/internal/ui"
)

// pageFunc renders a page. A returned error, or a panic, is turned into an
// error page by [Server.page].
type pageFunc func(w http.ResponseWriter, r *http.Request) error

// page wraps fn in the page-level error boundary.
func (s *Server) page(fn pageFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := callPage(fn, w, r); err != nil {
			s.pageError(w, r, err)
		}
	})
}

func callPage(fn pageFunc, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if v := recover(); v != nil {
			if v == http.ErrAbortHandler {
				panic(v)
			}
			err = apperr.FromPanic(v)
		}
	}()
	return fn(w, r)
}

func requestContext(r *http.Request) apperr.Context {
	return apperr.Context{
		URL:       r.URL.String(),
		UserAgent: r.UserAgent(),
	}
}

// pageError classifies err, reports it and renders the matching error
// display. When the error page itself fails the global shell is rendered.
func (s *Server) pageError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		s.logger.Debug("request cancelled", "path", r.URL.Path)
		return
	}

	report := s.errors.Handle(r.Context(), err, requestContext(r))
	class := apperr.Class{Severity: report.Severity, Category: report.Category}

	display, title := errorDisplay(r, err, class)
	display = display.WithDetails(s.site.Development, ui.Details{
		Message: report.Message,
		ErrorID: report.Context.ErrorID,
		Stack:   report.Stack,
	})

	w.Header().Set("Cache-Control", "no-store")
	if renderErr := s.render(w, r, class.HTTPStatus(), "error", title, display); renderErr != nil {
		s.fatal(w, r, renderErr)
	}
}

// errorDisplay picks the display preset for a classified error.
func errorDisplay(r *http.Request, err error, class apperr.Class) (ui.ErrorDisplay, string) {
	retry := retryHref(r)

	var re *renderError
	if errors.As(err, &re) {
		return ui.LoadingErrorDisplay(retry), "Loading Error"
	}

	switch class.Category {
	case apperr.CategoryNetwork:
		return ui.NetworkErrorDisplay(retry), "Connection Error"
	case apperr.CategoryNotFound:
		return ui.NotFoundErrorDisplay(), "Page Not Found"
	case apperr.CategoryAuthentication, apperr.CategoryAuthorization:
		return ui.UnauthorizedErrorDisplay("/contact"), "Access Denied"
	default:
		return ui.BoundaryErrorDisplay(retry), "Something went wrong!"
	}
}

// fatal reports err at critical severity and renders the global shell.
func (s *Server) fatal(w http.ResponseWriter, r *http.Request, err error) {
	report := apperr.NewReport(err, requestContext(r)).Escalate()
	if s.site.Development {
		report = report.WithStack()
	}
	s.errors.Dispatch(r.Context(), report)
	s.renderGlobal(w, r, report.Context.ErrorID)
}

// globalBoundary recovers panics that escaped every page boundary, such as
// those raised by middleware or API handlers.
func (s *Server) globalBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w}
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			if rec.wroteHeader {
				s.logger.Error("panic after response started", "path", r.URL.Path, "panic", v)
				return
			}
			s.fatal(w, r, apperr.FromPanic(v))
		}()
		next.ServeHTTP(rec, r)
	})
}
