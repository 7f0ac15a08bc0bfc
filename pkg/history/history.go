// Package history archives finished hands outside the engine: the recorder
// consumes only the action-log surface and performs all the I/O the engine
// itself avoids.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pokerhall/holdem/pkg/poker"
)

// HandRecord is one archived hand: its number and the full ordered action
// log the table produced for it.
type HandRecord struct {
	HandNumber int                 `json:"hand_number"`
	Actions    []poker.ActionEntry `json:"actions"`
}

// Recorder persists finished hands.
type Recorder interface {
	// RecordHand archives one finished hand for a table.
	RecordHand(tableID string, rec HandRecord) error
	// Hands returns a table's archived hands ordered by hand number.
	Hands(tableID string) ([]HandRecord, error)
	// Close releases the underlying storage.
	Close() error
}

// DB is a sqlite-backed Recorder.
type DB struct {
	*sql.DB
}

// NewDB opens (creating if needed) the hand-history database at path.
func NewDB(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS hands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			table_id TEXT NOT NULL,
			hand_number INTEGER NOT NULL,
			actions TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (table_id, hand_number)
		)
	`)
	return err
}

// RecordHand archives one finished hand. Re-recording the same hand number
// for a table replaces the earlier row.
func (db *DB) RecordHand(tableID string, rec HandRecord) error {
	actions, err := json.Marshal(rec.Actions)
	if err != nil {
		return fmt.Errorf("failed to encode actions: %v", err)
	}
	_, err = db.Exec(`
		INSERT INTO hands (table_id, hand_number, actions) VALUES (?, ?, ?)
		ON CONFLICT (table_id, hand_number) DO UPDATE SET actions = excluded.actions
	`, tableID, rec.HandNumber, string(actions))
	if err != nil {
		return fmt.Errorf("failed to record hand: %v", err)
	}
	return nil
}

// Hands returns a table's archived hands ordered by hand number.
func (db *DB) Hands(tableID string) ([]HandRecord, error) {
	rows, err := db.Query(`
		SELECT hand_number, actions FROM hands
		WHERE table_id = ? ORDER BY hand_number
	`, tableID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hands: %v", err)
	}
	defer rows.Close()

	var records []HandRecord
	for rows.Next() {
		var rec HandRecord
		var actions string
		if err := rows.Scan(&rec.HandNumber, &actions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(actions), &rec.Actions); err != nil {
			return nil, fmt.Errorf("failed to decode actions: %v", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
