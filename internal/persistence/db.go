// Package persistence provides SQLite-backed session storage for the host.
// The engine itself stays purely in-memory; the host saves a snapshot after
// transitions and appends cycle history rows for later reporting.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ohindex/sovereign-health/internal/game"
)

// ErrNotFound is returned when no snapshot exists for a session id.
var ErrNotFound = errors.New("session not found")

// DB wraps a SQLite connection for session storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		country TEXT NOT NULL,
		phase TEXT NOT NULL,
		cycle INTEGER NOT NULL,
		year INTEGER NOT NULL,
		composite REAL NOT NULL,
		state_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cycle_history (
		session_id TEXT NOT NULL,
		cycle INTEGER NOT NULL,
		year INTEGER NOT NULL,
		composite REAL NOT NULL,
		rank INTEGER NOT NULL,
		spent INTEGER NOT NULL,
		pillars_json TEXT NOT NULL,
		PRIMARY KEY (session_id, cycle)
	);

	CREATE INDEX IF NOT EXISTS idx_history_session ON cycle_history(session_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSnapshot upserts the full state for one session as a JSON blob plus
// a few queryable columns.
func (db *DB) SaveSnapshot(sessionID string, st game.State) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = db.conn.Exec(`INSERT INTO sessions
		(id, country, phase, cycle, year, composite, state_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			country=excluded.country, phase=excluded.phase, cycle=excluded.cycle,
			year=excluded.year, composite=excluded.composite,
			state_json=excluded.state_json, updated_at=excluded.updated_at`,
		sessionID, st.Country, string(st.Phase), st.Cycle, st.Year, st.Composite,
		string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", sessionID, err)
	}
	return nil
}

// LoadSnapshot reads the stored state for one session.
func (db *DB) LoadSnapshot(sessionID string) (game.State, error) {
	var blob string
	err := db.conn.Get(&blob, `SELECT state_json FROM sessions WHERE id = ?`, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return game.State{}, ErrNotFound
	}
	if err != nil {
		return game.State{}, fmt.Errorf("load snapshot %s: %w", sessionID, err)
	}

	var st game.State
	if err := json.Unmarshal([]byte(blob), &st); err != nil {
		return game.State{}, fmt.Errorf("unmarshal state %s: %w", sessionID, err)
	}
	return st, nil
}

// AppendHistory stores one cycle record. Re-saving the same cycle for a
// session replaces the row, which keeps restarts idempotent.
func (db *DB) AppendHistory(sessionID string, rec game.CycleRecord) error {
	pillars, err := json.Marshal(rec.Pillars)
	if err != nil {
		return fmt.Errorf("marshal pillars: %w", err)
	}
	_, err = db.conn.Exec(`INSERT OR REPLACE INTO cycle_history
		(session_id, cycle, year, composite, rank, spent, pillars_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, rec.Cycle, rec.Year, rec.Composite, rec.Rank, rec.Spent, string(pillars),
	)
	if err != nil {
		return fmt.Errorf("append history %s cycle %d: %w", sessionID, rec.Cycle, err)
	}
	return nil
}

// History returns all cycle records for one session in cycle order.
func (db *DB) History(sessionID string) ([]game.CycleRecord, error) {
	rows, err := db.conn.Queryx(`SELECT cycle, year, composite, rank, spent, pillars_json
		FROM cycle_history WHERE session_id = ? ORDER BY cycle`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query history %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []game.CycleRecord
	for rows.Next() {
		var rec game.CycleRecord
		var pillars string
		if err := rows.Scan(&rec.Cycle, &rec.Year, &rec.Composite, &rec.Rank, &rec.Spent, &pillars); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(pillars), &rec.Pillars); err != nil {
			return nil, fmt.Errorf("unmarshal pillars: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
