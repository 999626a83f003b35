package site

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rentany/site/contact"
)

// siteConfig holds mutable state during Site construction.
type siteConfig struct {
	settings            Settings
	port                int
	logger              *slog.Logger
	submitter           contact.Submitter
	submitDelay         time.Duration
	redirects           []Redirect
	reportBuffer        int
	submissionCallbacks []func(Submission)
}

// Redirect sends requests for an exact path elsewhere.
type Redirect struct {
	From      string
	To        string
	Permanent bool
}

// Option is a function that configures a [Site] instance during construction.
//
// Options return an error if validation fails.
type Option func(*siteConfig) error

// WithSettings replaces the site settings. Empty values fall back to
// [DefaultSettings].
//
// Returns an error for an unknown environment.
func WithSettings(s Settings) Option {
	return func(cfg *siteConfig) error {
		if s.Environment != "" && !s.Environment.Valid() {
			return fmt.Errorf("unknown environment %q", s.Environment)
		}
		cfg.settings = s.withDefaults()
		return nil
	}
}

// WithPort sets the HTTP port. Defaults to 3000 if not specified.
//
// Returns an error if the port is outside the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *siteConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Site instance.
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *siteConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithSubmitDelay sets the simulated latency of contact form submissions.
// Defaults to one second. Zero disables the wait.
//
// Returns an error if the delay is negative.
func WithSubmitDelay(d time.Duration) Option {
	return func(cfg *siteConfig) error {
		if d < 0 {
			return errors.New("submit delay cannot be negative")
		}
		cfg.submitDelay = d
		return nil
	}
}

// WithSubmitter replaces the simulated submitter, for example with one that
// forwards forms to a CRM. [WithSubmitDelay] has no effect once set.
//
// Returns an error if the submitter is nil.
func WithSubmitter(sub contact.Submitter) Option {
	return func(cfg *siteConfig) error {
		if sub == nil {
			return errors.New("submitter cannot be nil")
		}
		cfg.submitter = sub
		return nil
	}
}

// WithRedirect adds a redirect from one exact path to another location.
// A later redirect for the same path replaces an earlier one.
//
// Example:
//
//	s, err := site.New(
//	    site.WithRedirect("/listings", "/", false),
//	)
//
// Returns an error if from is not an absolute path or to is empty.
func WithRedirect(from, to string, permanent bool) Option {
	return func(cfg *siteConfig) error {
		if !strings.HasPrefix(from, "/") {
			return fmt.Errorf("redirect source must start with /: %q", from)
		}
		if to == "" {
			return fmt.Errorf("redirect target for %q cannot be empty", from)
		}
		for i, rd := range cfg.redirects {
			if rd.From == from {
				cfg.redirects[i] = Redirect{From: from, To: to, Permanent: permanent}
				return nil
			}
		}
		cfg.redirects = append(cfg.redirects, Redirect{From: from, To: to, Permanent: permanent})
		return nil
	}
}

// WithReportBuffer sets how many recent error reports are kept in memory.
// Defaults to 100.
//
// Returns an error if n is zero or negative.
func WithReportBuffer(n int) Option {
	return func(cfg *siteConfig) error {
		if n <= 0 {
			return errors.New("report buffer must be positive")
		}
		cfg.reportBuffer = n
		return nil
	}
}

// WithSubmissionCallback registers a function called after every
// successful contact form submission.
//
// Callbacks run synchronously on the request goroutine in registration
// order and must not block. Panics are recovered and logged.
//
// Example:
//
//	s, err := site.New(
//	    site.WithSubmissionCallback(func(sub site.Submission) {
//	        log.Printf("new enquiry: %s", sub.Form.Subject)
//	    }),
//	)
//
// Nil callbacks are silently ignored.
func WithSubmissionCallback(cb func(Submission)) Option {
	return func(cfg *siteConfig) error {
		if cb == nil {
			return nil
		}
		cfg.submissionCallbacks = append(cfg.submissionCallbacks, cb)
		return nil
	}
}
