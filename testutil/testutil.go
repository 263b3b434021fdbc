// Package testutil provides a fake Google-style API server for testing bound
// services. It does not import restbind and can be used from any package.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"testing"
)

// Server is an httptest.Server that routes by method and path, records every
// request, and answers unknown routes with a 404 error envelope.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// Request is a recorded request.
type Request struct {
	Method   string
	Path     string
	RawPath  string
	Query    url.Values
	RawQuery string
	Header   http.Header
	Body     []byte
}

// NewServer starts a fake API server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	t.Cleanup(s.Close)
	return s
}

// BaseURL returns the server URL with a trailing slash and the given service
// path appended.
func (s *Server) BaseURL(servicePath string) string {
	return s.URL + "/" + servicePath
}

// Handle registers h for method and the decoded request path, e.g.
// Handle("GET", "/storage/v1/b/photos", h).
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = h
}

// HandleJSON registers a handler that answers with status and v encoded as JSON.
func (s *Server) HandleJSON(method, path string, status int, v any) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, v)
	})
}

// HandleError registers a handler that answers with a Google error envelope.
func (s *Server) HandleError(method, path string, status int, reason, message string) {
	s.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, status, reason, message)
	})
}

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, failing the test if there is none.
func (s *Server) LastRequest(t testing.TB) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("expected at least one request, got none")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawPath:  r.URL.EscapedPath(),
		Query:    r.URL.Query(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	h, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		WriteError(w, http.StatusNotFound, "notFound", fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
		return
	}
	h(w, r)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError writes a Google error envelope.
func WriteError(w http.ResponseWriter, status int, reason, message string) {
	WriteJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
			"errors": []map[string]any{{
				"domain":  "global",
				"reason":  reason,
				"message": message,
			}},
		},
	})
}

// AssertQuery checks the values of a query parameter, in order.
func AssertQuery(t testing.TB, req Request, key string, expected ...string) {
	t.Helper()
	actual := req.Query[key]
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("expected query %s=%v, got %v (raw %q)", key, expected, actual, req.RawQuery)
	}
}

// AssertHeader checks that a request header has the expected value.
func AssertHeader(t testing.TB, req Request, key, expectedValue string) {
	t.Helper()
	actual := req.Header.Get(key)
	if actual != expectedValue {
		t.Errorf("expected header %s=%s, got %s", key, expectedValue, actual)
	}
}

// AssertJSONBody decodes the request body and compares it with expected.
func AssertJSONBody(t testing.TB, req Request, expected any) {
	t.Helper()

	// Compare as JSON to ignore formatting and field order differences.
	expectedJSON, _ := json.Marshal(expected)
	var expectedData, actualData any
	json.Unmarshal(expectedJSON, &expectedData)
	if err := json.Unmarshal(req.Body, &actualData); err != nil {
		t.Fatalf("failed to decode request body: %v\nBody: %s", err, req.Body)
	}

	expectedStr, _ := json.MarshalIndent(expectedData, "", "  ")
	actualStr, _ := json.MarshalIndent(actualData, "", "  ")
	if string(expectedStr) != string(actualStr) {
		t.Errorf("request body mismatch:\nExpected:\n%s\nActual:\n%s", expectedStr, actualStr)
	}
}

// AssertMethods checks that the typed client svc has a method for each
// operation, written "resource.operation". Dotted resource segments are
// followed as fields; segment and operation names are capitalized and
// underscores dropped ("move_folders" is MoveFolders).
func AssertMethods(t testing.TB, svc any, operations ...string) {
	t.Helper()
	for _, id := range operations {
		names := strings.Split(id, ".")
		v := reflect.ValueOf(svc)
		for _, seg := range names[:len(names)-1] {
			v = reflect.Indirect(v).FieldByName(exportedName(seg))
			if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
				t.Errorf("%s: no binding for resource segment %q", id, seg)
				break
			}
		}
		if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
			continue
		}
		if !v.MethodByName(exportedName(names[len(names)-1])).IsValid() {
			t.Errorf("%s: %s has no method %s", id, v.Type(), exportedName(names[len(names)-1]))
		}
	}
}

func exportedName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part != "" {
			b.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return b.String()
}
