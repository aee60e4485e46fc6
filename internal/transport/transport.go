// Package transport implements the HTTP adapter (C8) the event handler
// uses to POST encoded events and throttle-state replies to the
// collector, and to read back any inbound command body (§4.6, §5).
//
// Uses the same base-URL-plus-path request building, a fresh request
// built from the body bytes on every attempt, and a response-body size
// clamp as a typical retrying HTTP client,
// but drives retries with github.com/cenkalti/backoff/v4 instead of a
// hand-rolled doubling-backoff loop — the ecosystem way to express
// exponential backoff with a cap and a context-aware deadline.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/bc-dunia/govel/internal/config"
	"github.com/bc-dunia/govel/internal/logging"
)

// Transport POSTs a JSON body to the collector and returns the raw
// response body. Implementations must be safe for concurrent use,
// though the event handler (C6) only ever calls Post from its single
// consumer goroutine.
type Transport interface {
	Post(ctx context.Context, path string, body []byte) ([]byte, error)
}

// Credentials holds HTTP basic-auth credentials for the collector.
// A zero Credentials disables basic auth.
type Credentials struct {
	Username string
	Password string
}

// HTTPTransport is the default Transport: a persistent-connection HTTP
// client with basic auth, Content-Type: application/json, the Expect:
// header suppressed (§5 "Content-type is application/json; the HTTP
// Expect: header is explicitly suppressed"), and bounded exponential
// backoff across retryable failures.
type HTTPTransport struct {
	baseURL     string
	httpClient  *http.Client
	credentials Credentials
	logger      logging.Logger

	maxRetries       uint64
	initialBackoff   time.Duration
	maxBackoff       time.Duration
	maxResponseBytes int64
}

// Option configures an HTTPTransport at construction.
type Option func(*HTTPTransport)

// WithCredentials enables HTTP basic auth on every request.
func WithCredentials(creds Credentials) Option {
	return func(t *HTTPTransport) { t.credentials = creds }
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger logging.Logger) Option {
	return func(t *HTTPTransport) { t.logger = logger }
}

// WithRetryPolicy overrides the default retry count and backoff bounds.
func WithRetryPolicy(maxRetries uint64, initialBackoff, maxBackoff time.Duration) Option {
	return func(t *HTTPTransport) {
		t.maxRetries = maxRetries
		t.initialBackoff = initialBackoff
		t.maxBackoff = maxBackoff
	}
}

// WithHTTPClient overrides the default *http.Client, e.g. to set TLS
// config or a custom Transport (round tripper).
func WithHTTPClient(client *http.Client) Option {
	return func(t *HTTPTransport) { t.httpClient = client }
}

// NewHTTPTransport returns an HTTPTransport POSTing to baseURL.
func NewHTTPTransport(baseURL string, opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		baseURL:          baseURL,
		httpClient:       &http.Client{Timeout: config.DefaultHTTPTimeout},
		logger:           logging.Noop(),
		maxRetries:       uint64(config.DefaultMaxRetries),
		initialBackoff:   config.DefaultRetryBackoff,
		maxBackoff:       config.DefaultMaxRetryBackoff,
		maxResponseBytes: config.DefaultMaxResponseBodyBytes,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// retryableStatus reports whether a collector response status
// warrants a retry: 5xx and 429 are considered transient.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// Post sends body to baseURL+path and returns the (possibly empty)
// response body. Requests are retried with exponential backoff for
// connection failures, 429, and 5xx responses; a 4xx other than 429 is
// treated as permanent (§5, §8 "Transport error: logged, event
// dropped; no retry" describes the *handler's* behavior once this
// method's own retry budget is exhausted).
func (t *HTTPTransport) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	url := t.baseURL + path

	var respBody []byte
	policy := backoff.WithContext(t.backOff(), ctx)

	attempt := 0
	permanent := false
	operation := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			permanent = true
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Expect", "")
		if t.credentials.Username != "" {
			req.SetBasicAuth(t.credentials.Username, t.credentials.Password)
		}

		resp, err := t.httpClient.Do(req)
		if err != nil {
			t.logger.Warn("transport: request failed, retrying", "attempt", attempt, "error", err)
			return err
		}
		defer resp.Body.Close()

		read, err := readLimited(resp.Body, t.maxResponseBytes)
		if err != nil {
			return fmt.Errorf("read response body: %w", err)
		}

		if retryableStatus(resp.StatusCode) {
			err := fmt.Errorf("collector returned retryable status %d", resp.StatusCode)
			t.logger.Warn("transport: retryable status, retrying", "attempt", attempt, "status", resp.StatusCode)
			return err
		}
		if resp.StatusCode >= 400 {
			permanent = true
			return backoff.Permanent(fmt.Errorf("collector returned status %d", resp.StatusCode))
		}

		respBody = read
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		if permanent {
			// backoff.Retry unwraps a PermanentError; re-mark it so
			// callers can tell it apart via ErrPermanent.
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	return respBody, nil
}

func (t *HTTPTransport) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.initialBackoff
	b.MaxInterval = t.maxBackoff
	b.MaxElapsedTime = 0 // bounded by MaxRetries, not wall-clock
	return backoff.WithMaxRetries(b, t.maxRetries)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(r, limit+1)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		body = body[:limit]
	}
	return body, nil
}

// ErrPermanent reports whether err was marked non-retryable by the
// transport (a client error other than 429, or a malformed request).
func ErrPermanent(err error) bool {
	var perm *backoff.PermanentError
	return errors.As(err, &perm)
}
