package apperr

import (
	"context"
	"log/slog"
	"strings"
)

// Sink receives reports for external forwarding.
type Sink interface {
	Add(r Report)
}

// Handler logs error reports and records them in a [Sink].
//
// In development every report is logged in full. When Reporting is set
// (production), each report is also emitted as a compact "error reported"
// record for the log collector. Every report goes to Sink when one is set.
// The zero Handler logs via slog.Default and records nowhere.
type Handler struct {
	Logger      *slog.Logger
	Development bool
	Reporting   bool
	Sink        Sink
}

func (h *Handler) logger() *slog.Logger {
	if h == nil || h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// Handle builds a report for err, logs it and forwards it. The report is
// returned so callers can show its identifier to the user.
func (h *Handler) Handle(ctx context.Context, err error, partial Context) Report {
	report := NewReport(err, partial)
	if h != nil && h.Development {
		report = report.WithStack()
	}
	h.Dispatch(ctx, report)
	return report
}

// Dispatch logs and records an already built report.
func (h *Handler) Dispatch(ctx context.Context, report Report) {
	if h != nil && h.Development {
		Log(ctx, h.logger(), report)
	}
	if h != nil && h.Sink != nil {
		h.Sink.Add(report)
	}
	if h != nil && h.Reporting {
		h.logger().ErrorContext(ctx, "error reported",
			"error_id", report.Context.ErrorID,
			"severity", string(report.Severity),
			"category", string(report.Category),
		)
	}
}

// Log writes a report as a single structured record. Severity maps to the
// record level: low is a warning, everything else is an error.
func Log(ctx context.Context, logger *slog.Logger, report Report) {
	level := slog.LevelError
	if report.Severity == SeverityLow {
		level = slog.LevelWarn
	}

	attrs := []any{
		"message", report.Message,
		"error_id", report.Context.ErrorID,
		"timestamp", report.Context.Timestamp,
		"severity", string(report.Severity),
		"category", string(report.Category),
	}
	if report.Code != "" {
		attrs = append(attrs, "code", string(report.Code))
	}
	if report.Status != 0 {
		attrs = append(attrs, "status_code", report.Status)
	}
	if report.Context.URL != "" {
		attrs = append(attrs, "url", report.Context.URL)
	}
	if report.Context.UserID != "" {
		attrs = append(attrs, "user_id", report.Context.UserID)
	}
	if report.Stack != "" {
		attrs = append(attrs, "stack", report.Stack)
	}

	title := strings.ToUpper(string(report.Severity)) + " ERROR: " + string(report.Category)
	logger.Log(ctx, level, title, attrs...)
}

// WithHandling wraps fn so that any error it returns is handled by h and
// then returned to the caller as an *Error.
func WithHandling[T any](h *Handler, partial Context, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		if err != nil {
			appErr := Wrap(err)
			h.Handle(ctx, appErr, partial)
			return v, appErr
		}
		return v, nil
	}
}
