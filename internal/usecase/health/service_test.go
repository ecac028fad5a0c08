package health

import (
	"context"
	"testing"
)

// --- Mocks ---

type mockEngine struct {
	ready bool
}

func (m *mockEngine) Ready() bool { return m.ready }

// --- Tests ---

func TestCheck_ModelLoaded(t *testing.T) {
	svc := New(&mockEngine{ready: true})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if !r.ModelLoaded {
		t.Error("expected model_loaded true")
	}
}

func TestCheck_ModelNotLoaded(t *testing.T) {
	svc := New(&mockEngine{ready: false})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.ModelLoaded {
		t.Error("expected model_loaded false")
	}
}

func TestCheck_NilEngine(t *testing.T) {
	svc := New(nil)
	r := svc.Check(context.Background())

	if r.ModelLoaded {
		t.Error("nil engine must report model_loaded false")
	}
}
