package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"consciousday/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy io.Reader
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db: db,
		// Monotonic entropy keeps ids insertion-ordered even within the
		// same millisecond, so ByDate/Recent ordering stays stable.
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id            TEXT PRIMARY KEY,
		date          TEXT NOT NULL,
		journal       TEXT NOT NULL DEFAULT '',
		intention     TEXT NOT NULL DEFAULT '',
		dream         TEXT NOT NULL DEFAULT '',
		priorities    TEXT NOT NULL DEFAULT '',
		reflection    TEXT NOT NULL DEFAULT '',
		strategy      TEXT NOT NULL DEFAULT '',
		dream_summary TEXT NOT NULL DEFAULT '',
		mindset       TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
	CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at DESC);

	CREATE VIRTUAL TABLE IF NOT EXISTS entries_fts USING fts5(
		journal, dream, reflection, strategy,
		content=entries,
		content_rowid=rowid
	);
	`
	_, err := s.db.Exec(schema)
	if err != nil {
		return err
	}

	// FTS5 sync trigger. The log is append-only, so insert is the only
	// write path to mirror.
	s.db.Exec(`CREATE TRIGGER IF NOT EXISTS entries_ai AFTER INSERT ON entries BEGIN
		INSERT INTO entries_fts(rowid, journal, dream, reflection, strategy)
		VALUES (new.rowid, new.journal, new.dream, new.reflection, new.strategy);
	END`)

	// Backfill FTS for any existing entries not yet indexed
	s.db.Exec(`INSERT OR IGNORE INTO entries_fts(rowid, journal, dream, reflection, strategy)
		SELECT rowid, journal, dream, reflection, strategy FROM entries`)

	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, p SaveParams) (*model.Entry, error) {
	now := time.Now().UTC()
	id := s.newID()

	date := p.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, date, journal, intention, dream, priorities, reflection, strategy, dream_summary, mindset, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, date, p.Journal, p.Intention, p.Dream, p.Priorities,
		p.Reflection, p.Strategy, p.DreamSummary, p.Mindset,
		now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	return &model.Entry{
		ID:           id,
		Date:         date,
		Journal:      p.Journal,
		Intention:    p.Intention,
		Dream:        p.Dream,
		Priorities:   p.Priorities,
		Reflection:   p.Reflection,
		Strategy:     p.Strategy,
		DreamSummary: p.DreamSummary,
		Mindset:      p.Mindset,
		CreatedAt:    now,
	}, nil
}

func (s *SQLiteStore) ByDate(ctx context.Context, date string) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, journal, intention, dream, priorities, reflection, strategy, dream_summary, mindset, created_at
		 FROM entries WHERE date = ?
		 ORDER BY created_at ASC, id ASC`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]model.Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, journal, intention, dream, priorities, reflection, strategy, dream_summary, mindset, created_at
		 FROM entries
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEntries(rows)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var createdAt string

	err := row.Scan(
		&e.ID, &e.Date, &e.Journal, &e.Intention, &e.Dream, &e.Priorities,
		&e.Reflection, &e.Strategy, &e.DreamSummary, &e.Mindset, &createdAt,
	)
	if err != nil {
		return e, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}

func collectEntries(rows *sql.Rows) ([]model.Entry, error) {
	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
