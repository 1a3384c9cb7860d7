package testsupport

import (
	"context"
	"testing"

	"wordmill/internal/config"
	"wordmill/internal/history"
)

// MustOpenStore opens a history.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedRun records a minimal analysis run for tests using the provided store.
func SeedRun(t testing.TB, store *history.Store, source, label string) history.Record {
	t.Helper()

	rec, err := store.Add(context.Background(), history.Record{Source: source, Label: label})
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return rec
}
