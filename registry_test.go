package restbind

import (
	"log/slog"
	"strings"
	"testing"
)

func TestNewRegistry(t *testing.T) {
	other := newWidgetSpec()
	other.Name = "gadgets"

	reg, err := NewRegistry(newWidgetSpec(), other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	services := reg.Services()
	if len(services) != 2 || services[0].Name != "gadgets" || services[1].Name != "widgets" {
		t.Errorf("expected sorted services, got %v", services)
	}
	if s, ok := reg.Service("widgets"); !ok || s.Name != "widgets" {
		t.Error("expected widgets service")
	}
	if _, ok := reg.Service("missing"); ok {
		t.Error("expected missing service to be absent")
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	if _, err := NewRegistry(newWidgetSpec(), newWidgetSpec()); err == nil || !strings.Contains(err.Error(), "registered twice") {
		t.Errorf("expected duplicate error, got %v", err)
	}

	invalid := newWidgetSpec()
	invalid.Resources[0].Operations[0].HTTPMethod = "GRAB"
	if _, err := NewRegistry(invalid); err == nil || !strings.Contains(err.Error(), "GRAB") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := NewRegistry(newWidgetSpec())
	if err != nil {
		t.Fatal(err)
	}

	op, err := reg.Lookup("widgets", "widgets", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.ID != "widgets.widgets.list" {
		t.Errorf("expected widgets.widgets.list, got %s", op.ID)
	}

	for _, args := range [][3]string{
		{"gadgets", "widgets", "list"},
		{"widgets", "gadgets", "list"},
		{"widgets", "widgets", "explode"},
	} {
		if _, err := reg.Lookup(args[0], args[1], args[2]); !IsCode(err, CodeUnknownOperation) {
			t.Errorf("Lookup(%v): expected %s, got %v", args, CodeUnknownOperation, err)
		}
	}
}

func TestService_With(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	models := newWidgetModels()
	svc := NewService(newWidgetSpec(), &recordingInvoker{}).
		WithLogger(logger).
		WithModels(models)

	if svc.getLogger() != logger {
		t.Error("expected custom logger")
	}
	if svc.Models() != models {
		t.Error("expected models to be set")
	}
	if svc.Spec().Name != "widgets" {
		t.Errorf("expected widgets spec, got %s", svc.Spec().Name)
	}

	bare := NewService(newWidgetSpec(), nil)
	if bare.getLogger() != slog.Default() {
		t.Error("expected slog.Default() fallback")
	}

	r := svc.MustResource("widgets.parts")
	if r.Name() != "widgets.parts" || r.Service() != svc || len(r.Spec().Operations) != 1 {
		t.Errorf("unexpected resource %+v", r)
	}
}
