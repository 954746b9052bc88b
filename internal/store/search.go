package store

import (
	"context"
	"strings"

	"consciousday/internal/model"
)

const entryColumns = `e.id, e.date, e.journal, e.intention, e.dream, e.priorities,
       e.reflection, e.strategy, e.dream_summary, e.mindset, e.created_at`

// Search finds entries whose journal, dream, reflection, or strategy text
// matches the query. Uses the FTS5 index; falls back to LIKE when the query
// contains characters FTS5 treats as syntax.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	// Quote the query so user text is matched literally, not parsed as
	// FTS5 operators.
	quoted := `"` + strings.ReplaceAll(p.Query, `"`, `""`) + `"`

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries e
		INNER JOIN entries_fts ON entries_fts.rowid = e.rowid
		WHERE entries_fts MATCH ?
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT ?`, quoted, limit)
	if err != nil {
		return s.searchLike(ctx, p.Query, limit)
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *SQLiteStore) searchLike(ctx context.Context, query string, limit int) ([]model.Entry, error) {
	like := "%" + query + "%"

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+entryColumns+`
		FROM entries e
		WHERE e.journal LIKE ? OR e.dream LIKE ? OR e.reflection LIKE ? OR e.strategy LIKE ?
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT ?`, like, like, like, like, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}
