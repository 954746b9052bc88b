package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndByDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entry, err := s.Save(ctx, SaveParams{
		Date:         "2026-08-23",
		Journal:      "woke up early",
		Intention:    "ship the feature",
		Dream:        "a maze",
		Priorities:   "1. code",
		Reflection:   "r",
		Strategy:     "s",
		DreamSummary: "d",
		Mindset:      "m",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected non-empty ID")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := s.ByDate(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Journal != "woke up early" || got[0].Mindset != "m" {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
}

func TestSaveDefaultsDateToToday(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entry, err := s.Save(ctx, SaveParams{Journal: "j"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if entry.Date == "" {
		t.Error("expected a date to be assigned")
	}

	got, err := s.ByDate(ctx, entry.Date)
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 entry for %s, got %d", entry.Date, len(got))
	}
}

func TestMultipleEntriesPerDateKeepOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "first"})
	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "second"})
	s.Save(ctx, SaveParams{Date: "2026-08-24", Journal: "other day"})

	got, err := s.ByDate(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Journal != "first" || got[1].Journal != "second" {
		t.Errorf("expected storage order, got %q then %q", got[0].Journal, got[1].Journal)
	}
}

func TestByDateNoMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	got, err := s.ByDate(ctx, "1999-01-01")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}

func TestRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Date: "2026-08-21", Journal: "a"})
	s.Save(ctx, SaveParams{Date: "2026-08-22", Journal: "b"})
	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "c"})

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Journal != "c" || got[1].Journal != "b" {
		t.Errorf("expected newest first, got %q then %q", got[0].Journal, got[1].Journal)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Date: "2026-08-22", Journal: "a"})
	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "b"})
	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "c"})

	st, err := s.Stats(ctx, "unused-path")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.TotalEntries != 3 {
		t.Errorf("expected 3 entries, got %d", st.TotalEntries)
	}
	if st.DaysJournaled != 2 {
		t.Errorf("expected 2 days, got %d", st.DaysJournaled)
	}
	if st.FirstDate != "2026-08-22" || st.LastDate != "2026-08-23" {
		t.Errorf("date range: %s .. %s", st.FirstDate, st.LastDate)
	}
	if len(st.Dates) != 2 || st.Dates[0].Date != "2026-08-23" || st.Dates[0].Count != 2 {
		t.Errorf("unexpected per-date stats: %+v", st.Dates)
	}
}

func TestExportAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Save(ctx, SaveParams{Date: "2026-08-22", Journal: "a"})
	s.Save(ctx, SaveParams{Date: "2026-08-23", Journal: "b"})

	all, err := s.ExportAll(ctx, "")
	if err != nil {
		t.Fatalf("export all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].Date != "2026-08-22" {
		t.Errorf("expected date order, got %s first", all[0].Date)
	}

	one, err := s.ExportAll(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("export filtered: %v", err)
	}
	if len(one) != 1 || one[0].Journal != "b" {
		t.Errorf("unexpected filtered export: %+v", one)
	}
}
