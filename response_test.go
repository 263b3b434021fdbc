package restbind

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
)

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeError_Envelope(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeAPIError(&buf, &APIError{
		Status:  http.StatusConflict,
		Message: "Fingerprint mismatch",
		Errors:  []ErrorItem{{Domain: "global", Reason: "conflict", Message: "Fingerprint mismatch"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	apiErr := decodeError(newResponse(http.StatusConflict, buf.String()))
	if apiErr.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", apiErr.Status)
	}
	if apiErr.Message != "Fingerprint mismatch" {
		t.Errorf("expected message 'Fingerprint mismatch', got %q", apiErr.Message)
	}
	if apiErr.Reason() != "conflict" {
		t.Errorf("expected reason 'conflict', got %q", apiErr.Reason())
	}
	if apiErr.ErrorCode() != CodeConflict {
		t.Errorf("expected code %s, got %s", CodeConflict, apiErr.ErrorCode())
	}
	if apiErr.Body != buf.String() {
		t.Errorf("expected raw body to be kept, got %q", apiErr.Body)
	}
	if got := apiErr.Error(); got != "api error 409: Fingerprint mismatch, conflict" {
		t.Errorf("unexpected Error(): %q", got)
	}
}

func TestDecodeError_PlainBody(t *testing.T) {
	apiErr := decodeError(newResponse(http.StatusBadGateway, "upstream timed out\n"))
	if apiErr.Message != "upstream timed out" {
		t.Errorf("expected body text as message, got %q", apiErr.Message)
	}
	if apiErr.Reason() != "" {
		t.Errorf("expected no reason, got %q", apiErr.Reason())
	}
	if apiErr.ErrorCode() != CodeUnavailable {
		t.Errorf("expected code %s, got %s", CodeUnavailable, apiErr.ErrorCode())
	}
}

func TestDecodeError_EmptyBody(t *testing.T) {
	apiErr := decodeError(newResponse(http.StatusNotFound, ""))
	if apiErr.Message != "Not Found" {
		t.Errorf("expected status text, got %q", apiErr.Message)
	}
	if got := apiErr.Error(); got != "api error 404: Not Found" {
		t.Errorf("unexpected Error(): %q", got)
	}
}
