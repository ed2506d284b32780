// Package state persists dashboard view state (cursor and sort order) between runs.
// Catalog data is never stored here.
package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "sweetshop"
	dbFileName   = "sweetshop.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	log       *zap.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *ViewState
}

// Open opens the state database in the XDG data directory.
// Failed background saves are reported to log.
func Open(log *zap.Logger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, log)
}

// OpenPath opens (or creates) the state database at dbPath.
func OpenPath(dbPath string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dbPath != ":memory:" {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// A single connection keeps :memory: databases shared.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: log}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var flushErr error
	if pending != nil {
		flushErr = m.flush(*pending)
	}
	return errors.Join(flushErr, m.db.Close())
}

func (m *Manager) GetView() (*ViewState, error) {
	return getView(m.db)
}

// SaveView schedules a debounced write of the view state.
// Rapid cursor moves collapse into one write.
func (m *Manager) SaveView(state ViewState) {
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
			_ = m.flush(*pending)
		}
	})
}

func (m *Manager) flush(view ViewState) error {
	if err := saveView(m.db, view); err != nil {
		m.log.Warn("save view state",
			zap.String("selected_id", view.SelectedID),
			zap.Error(err))
		return err
	}
	return nil
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
