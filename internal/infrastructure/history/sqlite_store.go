// Package history persists suggestion cycles for auditing.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/pkg/filesystem"
	"github.com/sleepystudio/terminai/internal/ports"
)

// SQLiteStore persists suggestion records in ~/.terminai/history/history.db.
// Every method degrades to a no-op when the database could not be opened: the
// audit trail must never break a suggestion cycle.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex // serializes all statements on the shared connection
}

// NewSQLiteStore creates (or opens) the history database.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHomeDir(), ".terminai", "history", "history.db")
	return newSQLiteStoreAt(path)
}

func newSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS suggestions (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		invocation TEXT,
		command TEXT,
		verdict TEXT,
		reason TEXT,
		executed INTEGER,
		exit_code INTEGER,
		duration_ms INTEGER,
		provider TEXT,
		model TEXT
	);`)
	return err
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO suggestions
		(id, timestamp, invocation, command, verdict, reason, executed, exit_code, duration_ms, provider, model)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(domain.TimestampFormat),
		record.Invocation,
		record.Command,
		record.Verdict,
		record.Reason,
		boolToInt(record.Executed),
		record.ExitCode,
		record.DurationMS,
		record.Provider,
		record.Model,
	)
	return err
}

// Records returns the most recent entries, newest first.
func (s *SQLiteStore) Records(limit int) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	builder := strings.Builder{}
	builder.WriteString(`SELECT id, timestamp, invocation, command, verdict, reason, executed, exit_code, duration_ms, provider, model
		FROM suggestions ORDER BY datetime(timestamp) DESC`)
	var args []interface{}
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts string
		var executed int
		if err := rows.Scan(&rec.ID, &ts, &rec.Invocation, &rec.Command, &rec.Verdict, &rec.Reason,
			&executed, &rec.ExitCode, &rec.DurationMS, &rec.Provider, &rec.Model); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Executed = executed == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM suggestions")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
