// Package store provides the journal storage interface and SQLite
// implementation. The entry log is append-only: entries are written once and
// never updated or deleted.
package store

import (
	"context"

	"consciousday/internal/model"
)

// SaveParams holds the ten fields of one journal entry. Field order mirrors
// the persisted column order.
type SaveParams struct {
	Date         string // ISO-8601; empty means today
	Journal      string
	Intention    string
	Dream        string
	Priorities   string
	Reflection   string
	Strategy     string
	DreamSummary string
	Mindset      string
}

// SearchParams holds parameters for keyword search over entry text.
type SearchParams struct {
	Query string
	Limit int
}

// Store defines the entry storage interface.
type Store interface {
	// Save appends a new entry. Returns the created entry.
	Save(ctx context.Context, p SaveParams) (*model.Entry, error)

	// ByDate returns all entries with an exact date match, in storage
	// order (oldest first).
	ByDate(ctx context.Context, date string) ([]model.Entry, error)

	// Recent returns the newest entries, newest first.
	Recent(ctx context.Context, limit int) ([]model.Entry, error)

	// Search finds entries whose text matches the query.
	Search(ctx context.Context, p SearchParams) ([]model.Entry, error)

	// Close closes the store.
	Close() error
}
