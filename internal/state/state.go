// Package state owns the SQLite database and the small amount of UI state
// that outlives a session.
package state

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "crate"
	dbFileName   = "crate.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	logger    *log.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *NavigationState
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger routes failed background saves to logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// Open opens the database under the XDG data directory.
func Open(opts ...Option) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath, opts...)
}

// OpenAt opens (creating if needed) the database at path. ":memory:" is
// accepted for tests.
func OpenAt(path string, opts ...Option) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	m := &Manager{db: db, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		m.flush(*pending)
	}

	return m.db.Close()
}

func (m *Manager) GetNavigation() (*NavigationState, error) {
	return getNavigation(m.db)
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveNavigation schedules a write; bursts within the debounce window
// collapse into the last state.
func (m *Manager) SaveNavigation(state NavigationState) {
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
			m.flush(*pending)
		}
	})
}

func (m *Manager) flush(state NavigationState) {
	if err := saveNavigation(m.db, state); err != nil {
		m.logger.Warn("save navigation", "view", state.TopLevelView, "err", err)
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
