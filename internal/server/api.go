package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rentany/site/apperr"
	"github.com/rentany/site/contact"
	"github.com/rentany/site/internal/i18n"
)

// apiError is the body of every failed API response.
type apiError struct {
	Error     apiErrorBody `json:"error"`
	Timestamp time.Time    `json:"timestamp"`
	Path      string       `json:"path"`
}

type apiErrorBody struct {
	Message    string         `json:"message"`
	Code       apperr.Code    `json:"code"`
	StatusCode int            `json:"statusCode"`
	Details    map[string]any `json:"details,omitempty"`
}

// fieldError describes one invalid contact form field.
type fieldError struct {
	Field   contact.Field `json:"field"`
	Message string        `json:"message"`
	Code    apperr.Code   `json:"code"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode json response", "error", err)
	}
}

func (s *Server) writeAPIError(w http.ResponseWriter, r *http.Request, e *apperr.Error, details map[string]any) {
	status := e.StatusCode
	if status == 0 {
		status = apperr.Classify(e).HTTPStatus()
	}
	printer := i18n.Printer(requestLanguage(w, r))
	s.writeJSON(w, status, apiError{
		Error: apiErrorBody{
			Message:    i18n.Translate(printer, e.UserMessage()),
			Code:       e.Code,
			StatusCode: status,
			Details:    details,
		},
		Timestamp: s.now().UTC(),
		Path:      r.URL.Path,
	})
}

// handleContactAPI accepts a JSON encoded contact form. It is only
// available with beta features enabled.
func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	if !s.site.BetaFeatures {
		s.writeAPIError(w, r, apperr.New("contact api disabled",
			apperr.WithCode(apperr.CodeNotFound),
			apperr.WithStatus(http.StatusNotFound),
		), nil)
		return
	}

	var form contact.Form
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err := dec.Decode(&form); err != nil {
		s.writeAPIError(w, r, apperr.New("invalid json body",
			apperr.WithCode(apperr.CodeValidation),
			apperr.WithStatus(http.StatusBadRequest),
			apperr.WithCause(err),
		), nil)
		return
	}

	state := contact.NewState()
	state.Apply(form)
	submitted := state.Form

	ok, err := state.Submit(r.Context(), s.submitter)
	if err != nil {
		appErr := submissionError(err)
		report := s.errors.Handle(r.Context(), appErr, requestContext(r))
		s.writeAPIError(w, r, appErr, map[string]any{"errorId": report.Context.ErrorID})
		return
	}
	if !ok {
		printer := i18n.Printer(requestLanguage(w, r))
		fields := make([]fieldError, 0, len(state.Errors))
		for _, f := range contact.Fields {
			if msg := state.Errors.Get(f); msg != "" {
				fields = append(fields, fieldError{
					Field:   f,
					Message: i18n.Translate(printer, msg),
					Code:    apperr.CodeValidation,
				})
			}
		}
		s.writeAPIError(w, r, apperr.New("contact form invalid",
			apperr.WithCode(apperr.CodeValidation),
			apperr.WithStatus(http.StatusUnprocessableEntity),
		), map[string]any{"fields": fields})
		return
	}

	s.submitted(submitted)
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "submitted"})
}

// handleErrors returns the recently reported errors as JSON.
func (s *Server) handleErrors(w http.ResponseWriter, _ *http.Request) {
	reports := []apperr.Report{}
	if s.reports != nil {
		reports = s.reports.Recent()
	}
	s.writeJSON(w, http.StatusOK, reports)
}

// handleErrorStream streams newly reported errors via Server-Sent Events.
//
// Writes carry a deadline so a slow or vanished client cannot block the
// handler past shutdown.
func (s *Server) handleErrorStream(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		http.Error(w, "error reporting disabled", http.StatusNotFound)
		return
	}
	if _, ok := w.(http.Flusher); !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	rc := http.NewResponseController(w)
	deadlinesSupported := true

	writeAndFlush := func(data []byte) error {
		if deadlinesSupported {
			if err := rc.SetWriteDeadline(time.Now().Add(sseWriteTimeout)); err != nil {
				if !errors.Is(err, http.ErrNotSupported) {
					return err
				}
				s.logger.Warn("sse write deadlines not supported", "error", err)
				deadlinesSupported = false
			}
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		return rc.Flush()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := s.reports.Subscribe()
	defer s.reports.Unsubscribe(ch)

	// oldest first, so the client sees them in order
	recent := s.reports.Recent()
	for i := len(recent) - 1; i >= 0; i-- {
		data, err := json.Marshal(recent[i])
		if err != nil {
			continue
		}
		if err := writeAndFlush(data); err != nil {
			return
		}
	}

	for {
		select {
		case report, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(report)
			if err != nil {
				continue
			}
			if err := writeAndFlush(data); err != nil {
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}
