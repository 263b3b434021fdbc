package restbind

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the remote API, decoded from the
// Google error envelope:
//
//	{"error": {"code": 404, "message": "Not Found", "errors": [{"domain": "global", "reason": "notFound", "message": "Not Found"}]}}
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int `json:"code"`

	Message string      `json:"message"`
	Errors  []ErrorItem `json:"errors,omitempty"`

	// Body is the raw response body.
	Body string `json:"-"`

	// Header is the response header.
	Header http.Header `json:"-"`
}

// ErrorItem is one entry of the "errors" list in the error envelope.
type ErrorItem struct {
	Domain       string `json:"domain,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Message      string `json:"message,omitempty"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error %d", e.Status)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	for _, item := range e.Errors {
		if item.Reason != "" {
			fmt.Fprintf(&b, ", %s", item.Reason)
		}
	}
	return b.String()
}

// ErrorCode implements [Coder].
func (e *APIError) ErrorCode() ErrorCode {
	return CodeForHTTPStatus(e.Status)
}

// Reason returns the reason of the first error item, e.g. "notFound".
func (e *APIError) Reason() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Reason
}

// errorEnvelope is the wire wrapper around APIError.
type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 1 << 20

// decodeError builds an *APIError from a non-2xx response. Bodies that are not
// the Google envelope keep their text as the message.
func decodeError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{
		Status: resp.StatusCode,
		Body:   string(raw),
		Header: resp.Header,
	}

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		apiErr.Message = env.Error.Message
		apiErr.Errors = env.Error.Errors
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// EncodeAPIError writes err as a Google error envelope.
func EncodeAPIError(w io.Writer, err *APIError) error {
	return json.NewEncoder(w).Encode(errorEnvelope{Error: err})
}
