package restbind

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/broady/restbind/testutil"
)

func newHTTPWidgets(t *testing.T) (*testutil.Server, *HTTPTransport, *Resource) {
	t.Helper()
	srv := testutil.NewServer(t)
	transport := NewHTTPTransport(srv.BaseURL("widgets/v1/"), srv.Client()).
		WithLogger(slog.New(slog.DiscardHandler))
	svc := NewService(newWidgetSpec(), transport).WithModels(newWidgetModels())
	return srv, transport, svc.MustResource("widgets")
}

func TestHTTPTransport_Get(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.HandleJSON("GET", "/widgets/v1/widgets/w1", http.StatusOK, map[string]any{
		"id":     "w1",
		"name":   "sprocket",
		"weight": "1099511627776",
	})

	w, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, Params{"projection": "full"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Name != "sprocket" || w.Weight != 1<<40 {
		t.Errorf("unexpected widget %+v", w)
	}

	req := srv.LastRequest(t)
	testutil.AssertQuery(t, req, "projection", "full")
	testutil.AssertQuery(t, req, "id")
	testutil.AssertHeader(t, req, "User-Agent", DefaultUserAgent)
	testutil.AssertHeader(t, req, "Authorization", "")
}

func TestHTTPTransport_RepeatedQueryOrder(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.HandleJSON("GET", "/widgets/v1/widgets", http.StatusOK, map[string]any{})

	_, err := Call[WidgetList](context.Background(), widgets, "list",
		Params{"project": "p1"},
		&listOptions{Sort: []string{"+clicks", "-date"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := srv.LastRequest(t)
	if !strings.Contains(req.RawQuery, "sort=%2Bclicks&sort=-date") {
		t.Errorf("expected sort=%%2Bclicks&sort=-date in query, got %q", req.RawQuery)
	}
	testutil.AssertQuery(t, req, "sort", "+clicks", "-date")
	testutil.AssertQuery(t, req, "project", "p1")
}

func TestHTTPTransport_PostBody(t *testing.T) {
	srv, transport, widgets := newHTTPWidgets(t)
	transport.WithBearerToken("tok").WithUserAgent("widgets-test/1.0").WithHeader("X-Goog-User-Project", "billing")
	srv.HandleJSON("POST", "/widgets/v1/widgets", http.StatusOK, map[string]any{"id": "new", "name": "gear"})

	w, err := Call[Widget](context.Background(), widgets, "insert",
		Params{"project": "p1", PostBody: &Widget{Name: "gear", Tags: []string{"a", "b"}}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID != "new" {
		t.Errorf("expected id new, got %q", w.ID)
	}

	req := srv.LastRequest(t)
	if req.Method != "POST" {
		t.Errorf("expected POST, got %s", req.Method)
	}
	testutil.AssertHeader(t, req, "Content-Type", "application/json")
	testutil.AssertHeader(t, req, "Authorization", "Bearer tok")
	testutil.AssertHeader(t, req, "User-Agent", "widgets-test/1.0")
	testutil.AssertHeader(t, req, "X-Goog-User-Project", "billing")
	testutil.AssertJSONBody(t, req, map[string]any{"name": "gear", "tags": []string{"a", "b"}})
}

func TestHTTPTransport_RawBody(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.HandleJSON("POST", "/widgets/v1/widgets", http.StatusOK, map[string]any{})

	raw := json.RawMessage(`{"name":"raw"}`)
	if err := Exec(context.Background(), widgets, "insert", Params{"project": "p1", PostBody: raw}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(srv.LastRequest(t).Body); got != `{"name":"raw"}` {
		t.Errorf("expected raw body sent unchanged, got %s", got)
	}
}

func TestHTTPTransport_NoContent(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.Handle("DELETE", "/widgets/v1/widgets/w1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if err := Exec(context.Background(), widgets, "delete", Params{"id": "w1"}, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHTTPTransport_APIError(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.HandleError("GET", "/widgets/v1/widgets/w1", http.StatusNotFound, "notFound", "Widget w1 not found")

	_, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Widget w1 not found" || apiErr.Reason() != "notFound" {
		t.Errorf("unexpected API error %+v", apiErr)
	}
	if apiErr.ErrorCode() != CodeNotFound {
		t.Errorf("expected %s, got %s", CodeNotFound, apiErr.ErrorCode())
	}
	if !strings.Contains(apiErr.Error(), "notFound") {
		t.Errorf("expected reason in message, got %q", apiErr.Error())
	}
}

func TestHTTPTransport_NonEnvelopeError(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.Handle("GET", "/widgets/v1/widgets/w1", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})

	_, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "upstream exploded" || apiErr.ErrorCode() != CodeUnavailable {
		t.Errorf("unexpected API error %+v", apiErr)
	}
}

func TestHTTPTransport_Retries(t *testing.T) {
	srv, transport, widgets := newHTTPWidgets(t)
	transport.WithRetries(2, time.Millisecond)

	var attempts atomic.Int32
	srv.Handle("GET", "/widgets/v1/widgets/w1", func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			testutil.WriteError(w, http.StatusServiceUnavailable, "backendError", "try again")
			return
		}
		testutil.WriteJSON(w, http.StatusOK, map[string]any{"id": "w1"})
	})

	w, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID != "w1" || attempts.Load() != 3 {
		t.Errorf("expected success on third attempt, got %+v after %d", w, attempts.Load())
	}
}

func TestHTTPTransport_RetriesExhausted(t *testing.T) {
	srv, transport, widgets := newHTTPWidgets(t)
	transport.WithRetries(1, time.Millisecond)
	srv.HandleError("GET", "/widgets/v1/widgets/w1", http.StatusTooManyRequests, "rateLimitExceeded", "slow down")

	_, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, nil)
	if !IsCode(err, CodeResourceExhausted) {
		t.Errorf("expected %s, got %v", CodeResourceExhausted, err)
	}
	if n := len(srv.Requests()); n != 2 {
		t.Errorf("expected 2 attempts, got %d", n)
	}
}

func TestHTTPTransport_NegativeRetries(t *testing.T) {
	srv, transport, widgets := newHTTPWidgets(t)
	transport.WithRetries(-1, time.Millisecond)
	srv.HandleError("GET", "/widgets/v1/widgets/w1", http.StatusServiceUnavailable, "backendError", "try again")

	_, err := Call[Widget](context.Background(), widgets, "get", Params{"id": "w1"}, nil)
	if !IsCode(err, CodeUnavailable) {
		t.Errorf("expected %s, got %v", CodeUnavailable, err)
	}
	if strings.Contains(err.Error(), "%!w") {
		t.Errorf("expected the API error to be wrapped, got %q", err)
	}
	if n := len(srv.Requests()); n != 1 {
		t.Errorf("expected a single attempt, got %d", n)
	}
}

func TestHTTPTransport_NoRetryForPost(t *testing.T) {
	srv, transport, widgets := newHTTPWidgets(t)
	transport.WithRetries(3, time.Millisecond)
	srv.HandleError("POST", "/widgets/v1/widgets", http.StatusInternalServerError, "backendError", "boom")

	err := Exec(context.Background(), widgets, "insert", Params{"project": "p1", PostBody: &Widget{Name: "x"}}, nil)
	if !IsCode(err, CodeInternal) {
		t.Errorf("expected %s, got %v", CodeInternal, err)
	}
	if n := len(srv.Requests()); n != 1 {
		t.Errorf("expected a single attempt, got %d", n)
	}
}

func TestHTTPTransport_ContextCanceled(t *testing.T) {
	srv, _, widgets := newHTTPWidgets(t)
	srv.HandleJSON("GET", "/widgets/v1/widgets/w1", http.StatusOK, map[string]any{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Call[Widget](ctx, widgets, "get", Params{"id": "w1"}, nil)
	if !IsCode(err, CodeCanceled) {
		t.Errorf("expected %s, got %v", CodeCanceled, err)
	}
}

func TestHTTPTransport_NewRequest(t *testing.T) {
	transport := NewHTTPTransport("https://widgets.example.com/widgets/v1", nil)
	spec := newWidgetSpec()
	part, _ := spec.Lookup("widgets.parts", "get")

	req, err := transport.NewRequest(context.Background(), part, Params{"id": "w1", "part": "a/b c", "fields": "id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "https://widgets.example.com/widgets/v1/widgets/w1/parts/a/b%20c?fields=id"
	if req.URL.String() != want {
		t.Errorf("expected %s, got %s", want, req.URL.String())
	}
	if req.Body != nil && req.Body != http.NoBody {
		body, _ := io.ReadAll(req.Body)
		if len(body) != 0 {
			t.Errorf("expected no body, got %s", body)
		}
	}

	if _, err := transport.NewRequest(context.Background(), part, Params{"id": "w1"}); !IsCode(err, CodeUnresolvedPathParameter) {
		t.Errorf("expected %s, got %v", CodeUnresolvedPathParameter, err)
	}
}

func TestInvokerFunc(t *testing.T) {
	called := false
	var inv Invoker = InvokerFunc(func(ctx context.Context, op *OperationSpec, params Params, out any) error {
		called = true
		return nil
	})
	if err := inv.Invoke(context.Background(), &OperationSpec{}, nil, nil); err != nil || !called {
		t.Errorf("expected InvokerFunc to be called, got %v", err)
	}
}
