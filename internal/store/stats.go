package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string      `json:"db_path"`
	DBSizeBytes   int64       `json:"db_size_bytes"`
	TotalEntries  int         `json:"total_entries"`
	DaysJournaled int         `json:"days_journaled"`
	FirstDate     string      `json:"first_date,omitempty"`
	LastDate      string      `json:"last_date,omitempty"`
	Dates         []DateStats `json:"dates,omitempty"`
}

// DateStats holds per-date entry counts.
type DateStats struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.TotalEntries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT date) FROM entries`).Scan(&st.DaysJournaled)
	s.db.QueryRowContext(ctx, `SELECT COALESCE(MIN(date), ''), COALESCE(MAX(date), '') FROM entries`).
		Scan(&st.FirstDate, &st.LastDate)

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, COUNT(*) as cnt
		FROM entries
		GROUP BY date ORDER BY date DESC`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DateStats
		rows.Scan(&d.Date, &d.Count)
		st.Dates = append(st.Dates, d)
	}

	return st, nil
}
