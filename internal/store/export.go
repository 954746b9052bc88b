package store

import (
	"context"

	"consciousday/internal/model"
)

// ExportAll returns all entries, optionally filtered by exact date, ordered
// by date then insertion order. Intended for backups.
func (s *SQLiteStore) ExportAll(ctx context.Context, date string) ([]model.Entry, error) {
	query := `SELECT id, date, journal, intention, dream, priorities,
	                 reflection, strategy, dream_summary, mindset, created_at
	          FROM entries`
	args := []interface{}{}

	if date != "" {
		query += ` WHERE date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY date ASC, created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}
