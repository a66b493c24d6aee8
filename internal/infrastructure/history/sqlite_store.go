package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/magikvoice/callctl/internal/domain"
	"github.com/magikvoice/callctl/internal/ports"
)

// SQLiteStore persists call history in a SQLite database. If the database
// cannot be opened it degrades to a jsonl FileStore next to it.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.callctl/history/calls.db database.
func NewSQLiteStore() *SQLiteStore {
	return newSQLiteStore(filepath.Join(userHome(), ".callctl", "history", "calls.db"))
}

func newSQLiteStore(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		call_id TEXT,
		agent_id TEXT,
		agent_name TEXT,
		language TEXT,
		customer_name TEXT,
		phone_number TEXT,
		timestamp TEXT,
		recorded INTEGER
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: s.path + ".jsonl"}
}

// Append inserts a new history entry.
func (s *SQLiteStore) Append(entry domain.CallHistoryEntry) error {
	if s.db == nil {
		return s.fallback().Append(entry)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO calls
		(call_id, agent_id, agent_name, language, customer_name, phone_number, timestamp, recorded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.CallID,
		entry.AgentID,
		entry.AgentName,
		entry.Language,
		entry.CustomerName,
		entry.PhoneNumber,
		entry.Timestamp,
		boolToInt(entry.Recorded),
	)
	return err
}

// Records returns all entries in insertion order.
func (s *SQLiteStore) Records() ([]domain.CallHistoryEntry, error) {
	if s.db == nil {
		return s.fallback().Records()
	}
	rows, err := s.db.Query(`SELECT call_id, agent_id, agent_name, language, customer_name, phone_number, timestamp, recorded
		FROM calls ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.CallHistoryEntry
	for rows.Next() {
		var entry domain.CallHistoryEntry
		var recorded int
		if err := rows.Scan(&entry.CallID, &entry.AgentID, &entry.AgentName, &entry.Language,
			&entry.CustomerName, &entry.PhoneNumber, &entry.Timestamp, &recorded); err != nil {
			return nil, err
		}
		entry.Recorded = recorded == 1
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Delete removes every entry with the given call id.
func (s *SQLiteStore) Delete(callID string) error {
	if s.db == nil {
		return s.fallback().Delete(callID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM calls WHERE call_id = ?", callID)
	return err
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("DELETE FROM calls")
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
