package restbind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Invoker performs the remote call for a bound operation. params holds
// normalized values: string for scalars, []string for repeated parameters, and
// the request body under [PostBody]. out is a pointer the response is decoded
// into, or nil when the caller discards the response.
type Invoker interface {
	Invoke(ctx context.Context, op *OperationSpec, params Params, out any) error
}

// InvokerFunc adapts a function to the [Invoker] interface.
type InvokerFunc func(ctx context.Context, op *OperationSpec, params Params, out any) error

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, op *OperationSpec, params Params, out any) error {
	return f(ctx, op, params, out)
}

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "restbind/1"

// HTTPTransport is the default [Invoker]. It turns a bound call into an HTTP
// request against a base URL (root URL plus service path) and decodes JSON
// responses. It is safe for concurrent use once configured.
type HTTPTransport struct {
	baseURL   string
	client    *http.Client
	userAgent string
	header    http.Header
	token     string
	retries   int
	backoff   time.Duration
	logger    *slog.Logger
}

// NewHTTPTransport returns a transport for baseURL. A nil client means
// http.DefaultClient.
func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &HTTPTransport{
		baseURL:   baseURL,
		client:    client,
		userAgent: DefaultUserAgent,
		header:    http.Header{},
		backoff:   100 * time.Millisecond,
	}
}

// WithUserAgent sets the User-Agent header.
func (t *HTTPTransport) WithUserAgent(ua string) *HTTPTransport {
	t.userAgent = ua
	return t
}

// WithHeader adds a static header sent with every request.
func (t *HTTPTransport) WithHeader(key, value string) *HTTPTransport {
	t.header.Add(key, value)
	return t
}

// WithBearerToken sends "Authorization: Bearer <token>" with every request.
func (t *HTTPTransport) WithBearerToken(token string) *HTTPTransport {
	t.token = token
	return t
}

// WithRetries retries idempotent requests (GET, PUT, DELETE) up to n more times
// on network errors, 429 and 5xx responses. The wait starts at backoff and
// doubles after each attempt. Retries are off by default; n below zero counts
// as zero.
func (t *HTTPTransport) WithRetries(n int, backoff time.Duration) *HTTPTransport {
	t.retries = max(n, 0)
	t.backoff = backoff
	return t
}

// WithLogger sets a custom logger for the transport.
// If not set, slog.Default() will be used.
func (t *HTTPTransport) WithLogger(logger *slog.Logger) *HTTPTransport {
	t.logger = logger
	return t
}

// BaseURL returns the base URL requests are resolved against.
func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

func (t *HTTPTransport) getLogger() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.Default()
}

// NewRequest builds the HTTP request for a bound call without sending it.
// Path parameters are substituted into the template, query parameters are
// encoded with repeated values in caller order, and [PostBody] becomes the JSON
// body.
func (t *HTTPTransport) NewRequest(ctx context.Context, op *OperationSpec, params Params) (*http.Request, error) {
	path, err := ExpandPath(op, params)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for _, name := range params.Names() {
		if name == PostBody {
			continue
		}
		if p, ok := op.Parameter(name); ok && p.Location == LocationPath {
			continue
		}
		for _, v := range params.Strings(name) {
			query.Add(name, v)
		}
	}

	u := t.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	var hasBody bool
	if b, ok := params[PostBody]; ok && b != nil {
		raw, err := encodeBody(b)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request body: %w", op.ID, err)
		}
		body = bytes.NewReader(raw)
		hasBody = true
	}

	req, err := http.NewRequestWithContext(ctx, op.HTTPMethod, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op.ID, err)
	}
	for k, vals := range t.header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}
	return req, nil
}

func encodeBody(b any) ([]byte, error) {
	switch v := b.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	}
	return json.Marshal(b)
}

// Invoke implements [Invoker].
func (t *HTTPTransport) Invoke(ctx context.Context, op *OperationSpec, params Params, out any) error {
	logger := t.getLogger()
	attempts := 1
	if isIdempotent(op.HTTPMethod) {
		attempts += t.retries
	}
	wait := t.backoff

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}

		// The body reader is consumed by each attempt, so rebuild the request.
		req, err := t.NewRequest(ctx, op, params)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := t.client.Do(req)
		if err != nil {
			lastErr = err
			logger.DebugContext(ctx, "request failed",
				slog.String("operation", op.ID),
				slog.Int("attempt", attempt),
				slog.Any("error", err))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}
		logger.DebugContext(ctx, "request completed",
			slog.String("operation", op.ID),
			slog.String("method", req.Method),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
			slog.Int("attempt", attempt),
			slog.Duration("duration", time.Since(start)))

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return decodeResponse(resp, out)
		}
		apiErr := decodeError(resp)
		resp.Body.Close()
		if !isRetryableStatus(resp.StatusCode) {
			return apiErr
		}
		lastErr = apiErr
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) {
		return apiErr
	}
	return fmt.Errorf("%s: request failed after %d attempt(s): %w", op.ID, attempts, lastErr)
}

func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
