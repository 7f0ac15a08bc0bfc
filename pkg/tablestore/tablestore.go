// Package tablestore hands out per-table exclusive access to poker tables.
// The engine is single-threaded per table; every mutating call on a table
// must hold that table's handle lock. The store's own lock guards only the
// table map, so different tables proceed fully in parallel.
package tablestore

import (
	"fmt"
	"sort"
	"sync"

	"github.com/decred/slog"
	"github.com/google/uuid"

	"github.com/pokerhall/holdem/pkg/history"
	"github.com/pokerhall/holdem/pkg/poker"
)

// Config holds store-wide collaborators.
type Config struct {
	// Log receives table lifecycle tracing. Defaults to slog.Disabled.
	Log slog.Logger
	// Recorder, when set, archives every finished hand's action log.
	Recorder history.Recorder
}

// Store is an explicit registry of tables, one exclusive handle each.
type Store struct {
	log      slog.Logger
	recorder history.Recorder

	mu     sync.RWMutex
	tables map[string]*Handle
}

// New creates an empty store.
func New(cfg Config) *Store {
	log := cfg.Log
	if log == nil {
		log = slog.Disabled
	}
	return &Store{
		log:      log,
		recorder: cfg.Recorder,
		tables:   make(map[string]*Handle),
	}
}

// Create builds a new table from the config and registers it. An empty
// config ID gets a generated uuid.
func (s *Store) Create(cfg poker.TableConfig) *Handle {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.Log == nil {
		cfg.Log = s.log
	}

	h := &Handle{
		id:       cfg.ID,
		table:    poker.NewTable(cfg),
		recorder: s.recorder,
	}

	s.mu.Lock()
	s.tables[cfg.ID] = h
	s.mu.Unlock()

	s.log.Infof("created table %s (%s)", cfg.ID, cfg.Name)
	return h
}

// Get returns the handle for a table id.
func (s *Store) Get(id string) (*Handle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.tables[id]
	return h, ok
}

// Remove drops a table from the store.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[id]; !ok {
		return fmt.Errorf("table %s not found", id)
	}
	delete(s.tables, id)
	s.log.Infof("removed table %s", id)
	return nil
}

// List returns all registered table ids, sorted.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.tables))
	for id := range s.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Handle is the exclusive-access unit for one table. All table access goes
// through Do or View, which hold the handle's lock.
type Handle struct {
	id       string
	mu       sync.Mutex
	table    *poker.Table
	recorder history.Recorder

	archivedHand int
}

// ID returns the table id.
func (h *Handle) ID() string { return h.id }

// Do runs one mutating call against the table under the handle lock. When
// the call leaves the table FINISHED on a hand not yet archived, the hand's
// action log goes to the recorder.
func (h *Handle) Do(fn func(t *poker.Table) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := fn(h.table)

	if h.recorder != nil && h.table.Phase() == poker.PhaseFinished &&
		h.table.HandNumber() > h.archivedHand {
		rec := history.HandRecord{
			HandNumber: h.table.HandNumber(),
			Actions:    h.table.ActionLogs(),
		}
		if recErr := h.recorder.RecordHand(h.id, rec); recErr != nil {
			// The game result stands even if archiving fails.
			h.tableLog().Errorf("failed to archive hand %d of table %s: %v",
				rec.HandNumber, h.id, recErr)
		} else {
			h.archivedHand = rec.HandNumber
		}
	}

	return err
}

// View runs a read-only call against the table under the handle lock,
// joining the same per-table exclusion as mutating calls.
func (h *Handle) View(fn func(t *poker.Table)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.table)
}

// State returns a snapshot for the viewer under the handle lock.
func (h *Handle) State(viewerToken string) poker.TableState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table.State(viewerToken)
}

// ActionLogs returns the table's current action log under the handle lock.
func (h *Handle) ActionLogs() []poker.ActionEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table.ActionLogs()
}

func (h *Handle) tableLog() slog.Logger {
	if log := h.table.Config().Log; log != nil {
		return log
	}
	return slog.Disabled
}
