package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultWebhookTimeout bounds a single webhook delivery.
	DefaultWebhookTimeout = 5 * time.Second

	maxWebhookResponseSize = 64 << 10
)

// connection pooling limits; submissions go to a single host
const (
	webhookMaxIdleConns    = 10
	webhookMaxConnsPerHost = 10
	webhookIdleConnTimeout = 60 * time.Second
)

// WebhookError is returned when the webhook answers with a non-2xx status.
type WebhookError struct {
	StatusCode int
	Body       string
}

func (e *WebhookError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Body)
}

// webhookPayload is the JSON body posted for each submission.
type webhookPayload struct {
	Form
	SubmittedAt time.Time `json:"submittedAt"`
}

// WebhookSubmitter delivers forms by POSTing them as JSON to a URL, such
// as a CRM intake endpoint or a mail relay.
//
// Each request carries an Idempotency-Key header so a receiver can drop
// duplicates. Timeouts are applied per request via context.
type WebhookSubmitter struct {
	url        string
	headers    map[string]string
	timeout    time.Duration
	httpClient *http.Client
	now        func() time.Time
}

// NewWebhookSubmitter creates a [WebhookSubmitter] posting to url with the
// given extra headers. A timeout of zero means [DefaultWebhookTimeout].
func NewWebhookSubmitter(url string, headers map[string]string, timeout time.Duration) *WebhookSubmitter {
	if timeout <= 0 {
		timeout = DefaultWebhookTimeout
	}
	hs := make(map[string]string, len(headers))
	for k, v := range headers {
		hs[k] = v
	}
	return &WebhookSubmitter{
		url:     url,
		headers: hs,
		timeout: timeout,
		httpClient: &http.Client{
			// no client timeout, requests use the context deadline
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        webhookMaxIdleConns,
				MaxIdleConnsPerHost: webhookMaxIdleConns,
				MaxConnsPerHost:     webhookMaxConnsPerHost,
				IdleConnTimeout:     webhookIdleConnTimeout,
			},
		},
		now: time.Now,
	}
}

// URL returns the webhook address.
func (w *WebhookSubmitter) URL() string { return w.url }

// Submit posts f to the webhook. Any transport failure or non-2xx status is
// an error; a *WebhookError carries the status and a truncated body.
func (w *WebhookSubmitter) Submit(ctx context.Context, f Form) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	body, err := json.Marshal(webhookPayload{Form: f, SubmittedAt: w.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	for key, value := range w.headers {
		req.Header.Set(key, value)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxWebhookResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &WebhookError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), 200)}
	}
	return nil
}

// Close closes idle connections. The submitter remains usable.
// Safe to call on a nil receiver.
func (w *WebhookSubmitter) Close() {
	if w == nil || w.httpClient == nil {
		return
	}
	w.httpClient.CloseIdleConnections()
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
