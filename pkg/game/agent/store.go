package agent

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS agents (
    slot             INTEGER PRIMARY KEY,
    name             TEXT NOT NULL,
    selected_mission INTEGER NOT NULL,
    next_mission     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS completed_missions (
    slot        INTEGER NOT NULL REFERENCES agents(slot) ON DELETE CASCADE,
    mission     INTEGER NOT NULL,
    difficulty  INTEGER NOT NULL,
    PRIMARY KEY (slot, mission)
);
`

// Store persists the roster.
type Store interface {
	Load(ctx context.Context) (*Roster, error)
	Save(ctx context.Context, r *Roster) error
}

// SQLiteStore keeps agents in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// Open opens or creates the database at path.
func Open(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads every agent in slot order.
func (s *SQLiteStore) Load(ctx context.Context) (*Roster, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slot, name, selected_mission, next_mission
		FROM agents ORDER BY slot LIMIT ?`, MaxAgentCount)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var agents []Data
	var slots []int
	for rows.Next() {
		var (
			slot int
			d    Data
		)
		if err := rows.Scan(&slot, &d.Name, &d.SelectedMission, &d.NextMission); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		agents = append(agents, d)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agents: %w", err)
	}

	for i, slot := range slots {
		if err := s.loadCompleted(ctx, slot, &agents[i]); err != nil {
			return nil, err
		}
	}
	return NewRoster(agents...), nil
}

func (s *SQLiteStore) loadCompleted(ctx context.Context, slot int, d *Data) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mission, difficulty FROM completed_missions WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("query completed missions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mission, diff int
		if err := rows.Scan(&mission, &diff); err != nil {
			return fmt.Errorf("scan completed mission: %w", err)
		}
		if mission >= 1 && mission <= MaxLevelCount {
			d.Completed[mission-1] = Difficulty(diff)
		}
	}
	return rows.Err()
}

// Save replaces the stored roster.
func (s *SQLiteStore) Save(ctx context.Context, r *Roster) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM agents`); err != nil {
		return fmt.Errorf("clear agents: %w", err)
	}

	agentStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO agents (slot, name, selected_mission, next_mission)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare agent insert: %w", err)
	}
	defer agentStmt.Close()

	missionStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO completed_missions (slot, mission, difficulty)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare mission insert: %w", err)
	}
	defer missionStmt.Close()

	for slot, d := range r.Agents() {
		if _, err := agentStmt.ExecContext(ctx, slot, d.Name, d.SelectedMission, d.NextMission); err != nil {
			return fmt.Errorf("insert agent %d: %w", slot, err)
		}
		last := min(d.NextMission-1, MaxLevelCount)
		for m := 1; m <= last; m++ {
			if _, err := missionStmt.ExecContext(ctx, slot, m, int(d.Completed[m-1])); err != nil {
				return fmt.Errorf("insert completed mission %d/%d: %w", slot, m, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
