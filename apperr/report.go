package apperr

import (
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// idPrefix marks identifiers generated for error reports.
const idPrefix = "err_"

// Context describes where an error happened.
type Context struct {
	ErrorID   string    `json:"error_id"`
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
}

// Report is a classified error ready for logging or forwarding.
//
// Every Report carries a non-empty ErrorID and Timestamp.
type Report struct {
	Err      *Error   `json:"-"`
	Message  string   `json:"message"`
	Code     Code     `json:"code,omitempty"`
	Status   int      `json:"status_code,omitempty"`
	Context  Context  `json:"context"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	Stack    string   `json:"stack,omitempty"`
}

// NewID returns a fresh error identifier.
func NewID() string {
	return idPrefix + uuid.NewString()
}

// NewContext fills in the identifier and timestamp missing from partial.
func NewContext(partial Context) Context {
	ctx := partial
	if ctx.ErrorID == "" {
		ctx.ErrorID = NewID()
	}
	if ctx.Timestamp.IsZero() {
		ctx.Timestamp = now()
	}
	return ctx
}

// NewReport classifies err and builds a [Report] around it.
func NewReport(err error, partial Context) Report {
	e := Wrap(err)
	if e == nil {
		e = New("unknown error")
	}
	class := Classify(e)
	return Report{
		Err:      e,
		Message:  e.Error(),
		Code:     e.Code,
		Status:   e.StatusCode,
		Context:  NewContext(partial),
		Severity: class.Severity,
		Category: class.Category,
	}
}

// WithStack returns a copy of r carrying the current goroutine's stack.
func (r Report) WithStack() Report {
	r.Stack = string(debug.Stack())
	return r
}

// Escalate returns a copy of r with critical severity. The root boundary
// uses it for failures that escaped every page-level handler.
func (r Report) Escalate() Report {
	r.Severity = SeverityCritical
	return r
}
