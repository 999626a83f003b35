package site

import (
	"log/slog"
	"time"

	"github.com/rentany/site/contact"
)

// Submission is a contact form that passed validation and was handed to
// the submitter.
type Submission struct {
	Form       contact.Form
	ReceivedAt time.Time
}

// invokeCallbackSafe calls a submission callback with panic recovery.
// Panics are logged but do not propagate.
func invokeCallbackSafe(cb func(Submission), sub Submission, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("submission callback panicked",
				"panic", r,
				"subject", sub.Form.Subject,
			)
		}
	}()
	cb(sub)
}
