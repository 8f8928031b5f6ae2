package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteHistoryStore {
	t.Helper()

	store, err := NewSQLiteHistoryStore(SQLiteHistoryConfig{
		Path: filepath.Join(t.TempDir(), "history.db"),
	})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteHistoryStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entries := []*Entry{
		{Equation: "y=x", Zoom: 1.0},
		{Equation: "y=sin(x)", Zoom: 1.5, XOffset: 2},
		{Equation: "y=x^2", Zoom: 2.25, YOffset: -1},
	}
	for _, e := range entries {
		if err := store.Record(ctx, e); err != nil {
			t.Fatalf("Record(%q) failed: %v", e.Equation, err)
		}
		if e.ID == "" {
			t.Errorf("Record did not assign an ID for %q", e.Equation)
		}
		if e.PlottedAt.IsZero() {
			t.Errorf("Record did not assign a timestamp for %q", e.Equation)
		}
	}

	got, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(got))
	}

	seen := make(map[string]bool)
	for _, e := range got {
		seen[e.Equation] = true
	}
	for _, e := range entries {
		if !seen[e.Equation] {
			t.Errorf("equation %q missing from listing", e.Equation)
		}
	}
}

func TestSQLiteHistoryStore_ListLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := store.Record(ctx, &Entry{Equation: "y=x", Zoom: 1}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected limit of 2 entries, got %d", len(got))
	}
}

func TestSQLiteHistoryStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Record(ctx, &Entry{Equation: "y=x", Zoom: 1}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	got, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history after Clear, got %d entries", len(got))
	}
}

func TestSQLiteHistoryStore_RecordNil(t *testing.T) {
	store := newTestStore(t)

	if err := store.Record(context.Background(), nil); err == nil {
		t.Error("expected error for nil entry")
	}
}
