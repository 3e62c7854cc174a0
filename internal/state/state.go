// Package state persists what the client remembers between runs: the last
// page, display preferences and the visit history.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "moo"
	dbFileName   = "moo.db"
	saveDebounce = 500 * time.Millisecond
)

// PageState is the page the client was on and how it was displayed.
type PageState struct {
	Path   string
	Dark   bool
	Volume float64
}

// Manager stores state in SQLite.
type Manager struct {
	db         *sql.DB
	maxHistory int
	now        func() time.Time

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *PageState
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at dbPath, creating it if needed.
func OpenPath(dbPath string) (*Manager, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// one writer; also keeps :memory: databases on a single connection
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Manager{db: db, maxHistory: DefaultMaxHistory, now: time.Now}, nil
}

// Close flushes any pending page save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		_ = savePage(m.db, *pending, m.now())
	}
	return m.db.Close()
}

// DB returns the underlying database.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetPage returns the saved page state, or nil on first run.
func (m *Manager) GetPage() (*PageState, error) {
	return getPage(m.db)
}

// SavePage records the page state. Writes are debounced so that quick
// successive navigations hit the database once.
func (m *Manager) SavePage(state PageState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = savePage(m.db, *pending, m.now())
		}
	})
}

func getPage(db *sql.DB) (*PageState, error) {
	var s PageState
	err := db.QueryRow(`SELECT path, dark, volume FROM page_state WHERE id = 1`).
		Scan(&s.Path, &s.Dark, &s.Volume)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func savePage(db *sql.DB, s PageState, now time.Time) error {
	_, err := db.Exec(`
		INSERT INTO page_state (id, path, dark, volume, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			path = excluded.path,
			dark = excluded.dark,
			volume = excluded.volume,
			updated_at = excluded.updated_at
	`, s.Path, s.Dark, s.Volume, now.Unix())
	return err
}
