package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/broady/restbind"
)

func newLoggedNotes(buf *bytes.Buffer, inv restbind.Invoker) *restbind.Resource {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return restbind.NewService(newNotesSpec(), inv).
		WithInterceptor(LoggingInterceptor(logger)).
		MustResource("notes")
}

func TestLoggingInterceptor_Success(t *testing.T) {
	var buf bytes.Buffer
	notes := newLoggedNotes(&buf, &paramsRecorder{})

	err := restbind.Exec(context.Background(), notes, "get", restbind.Params{"id": "n1"}, nil)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "call started") {
		t.Error("expected 'call started' in log output")
	}
	if !strings.Contains(logOutput, "call completed") {
		t.Error("expected 'call completed' in log output")
	}
	if !strings.Contains(logOutput, "notes.notes.get") {
		t.Error("expected call ID in log output")
	}
	if !strings.Contains(logOutput, "duration") {
		t.Error("expected 'duration' in log output")
	}
}

func TestLoggingInterceptor_Error(t *testing.T) {
	var buf bytes.Buffer
	testErr := &restbind.APIError{Status: 404, Message: "note n1 not found"}
	notes := newLoggedNotes(&buf, &paramsRecorder{err: testErr})

	err := restbind.Exec(context.Background(), notes, "get", restbind.Params{"id": "n1"}, nil)
	if !errors.Is(err, testErr) {
		t.Errorf("expected API error, got %v", err)
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, "call failed") {
		t.Error("expected 'call failed' in log output")
	}
	if !strings.Contains(logOutput, "not_found") || !strings.Contains(logOutput, "note n1 not found") {
		t.Errorf("expected error details in log output, got %s", logOutput)
	}
}

func TestLoggingInterceptor_RejectedCallsAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	rec := &paramsRecorder{}
	notes := newLoggedNotes(&buf, rec)

	err := restbind.Exec(context.Background(), notes, "get", restbind.Params{}, nil)
	if !restbind.IsCode(err, restbind.CodeMissingRequiredParameter) {
		t.Errorf("expected %s, got %v", restbind.CodeMissingRequiredParameter, err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no log output, got %s", buf.String())
	}
	if rec.last() != nil {
		t.Error("expected invoker not to be called")
	}
}

func TestLoggingInterceptor_NilLogger(t *testing.T) {
	// Should not panic with nil logger, should use default
	interceptor := LoggingInterceptor(nil)

	info := &restbind.CallInfo{
		Service:   newNotesSpec(),
		Resource:  "notes",
		Operation: newNotesSpec().Resources[0].Operations[0],
	}
	handler := func(ctx context.Context, params restbind.Params) (any, error) {
		return "response", nil
	}

	result, err := interceptor(context.Background(), info, restbind.Params{"id": "n1"}, handler)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if result != "response" {
		t.Errorf("expected response, got %v", result)
	}
}

func TestLoggingInterceptor_PropagatesContext(t *testing.T) {
	type ctxKey string
	key := ctxKey("test-key")
	ctx := context.WithValue(context.Background(), key, "test-value")

	var buf bytes.Buffer
	notes := newLoggedNotes(&buf, restbind.InvokerFunc(func(ctx context.Context, op *restbind.OperationSpec, params restbind.Params, out any) error {
		if ctx.Value(key) != "test-value" {
			t.Error("expected context value to be propagated")
		}
		if info, ok := restbind.CallFromContext(ctx); !ok || info.ID() != "notes.notes.get" {
			t.Errorf("expected call info in context, got %v", info)
		}
		return nil
	}))

	if err := restbind.Exec(ctx, notes, "get", restbind.Params{"id": "n1"}, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
