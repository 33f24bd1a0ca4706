// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: store.go: SQLite history of contention runs
//
// Purpose:
//   - Keeps every harness report so regressions in lock or CAS behaviour
//     show up across builds and backends.
//
// Notes:
//   - The full report is stored as a JSON blob next to the columns used
//     for listing, so the schema survives report changes.
// ─────────────────────────────────────────────────────────────────────────────

package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sugawarayuuta/sonnet"

	"embd/contention"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_ns  INTEGER NOT NULL,
	mode        TEXT    NOT NULL,
	contenders  INTEGER NOT NULL,
	violations  INTEGER NOT NULL,
	ok          INTEGER NOT NULL,
	report      TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_started ON runs(started_ns);
`

// ErrNilReport is returned by Save when given no report.
var ErrNilReport = errors.New("store: nil report")

// Entry is one stored run.
type Entry struct {
	ID     int64              `json:"id"`
	Report *contention.Report `json:"report"`
}

// Store is a handle on the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save appends rep and returns its row id.
func (s *Store) Save(rep *contention.Report) (int64, error) {
	if rep == nil {
		return 0, ErrNilReport
	}
	blob, err := sonnet.Marshal(rep)
	if err != nil {
		return 0, fmt.Errorf("store: encode report: %w", err)
	}
	ok := 0
	if rep.OK() {
		ok = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (started_ns, mode, contenders, violations, ok, report) VALUES (?, ?, ?, ?, ?, ?)`,
		rep.StartedAt, string(rep.Config.Mode), rep.Config.Contenders, rep.Violations, ok, string(blob),
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert: %w", err)
	}
	return res.LastInsertId()
}

// List returns up to limit runs, newest first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(`SELECT id, report FROM runs ORDER BY started_ns DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			id   int64
			blob string
		)
		if err := rows.Scan(&id, &blob); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		rep := new(contention.Report)
		if err := sonnet.Unmarshal([]byte(blob), rep); err != nil {
			return nil, fmt.Errorf("store: decode run %d: %w", id, err)
		}
		out = append(out, Entry{ID: id, Report: rep})
	}
	return out, rows.Err()
}

// Failures returns how many stored runs broke exclusivity.
func (s *Store) Failures() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE ok = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}
