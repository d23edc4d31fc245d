// Package tracker persists which tracker categories the user has blocked.
// The persisted table is the source of truth; a set of blocked ids is kept
// in memory so page-load decisions never touch the database.
package tracker

import (
	"database/sql"
	"fmt"
	"sync"

	"wisp/internal/logger"
)

// State is the persisted block state for a tracker category.
type State int

const (
	StateUnset State = iota
	StateBlocked
)

func (s State) String() string {
	if s == StateBlocked {
		return "blocked"
	}
	return "unset"
}

// Category is a known tracker category the user can block.
type Category struct {
	ID   int64
	Name string
}

// Categories lists the tracker categories wisp knows about.
var Categories = []Category{
	{ID: 1, Name: "Advertising"},
	{ID: 2, Name: "Analytics"},
	{ID: 3, Name: "Social"},
	{ID: 4, Name: "Content"},
	{ID: 5, Name: "Cryptomining"},
	{ID: 6, Name: "Fingerprinting"},
}

const schema = `
CREATE TABLE IF NOT EXISTS tracker_state (
	id    INTEGER PRIMARY KEY,
	state INTEGER NOT NULL
);`

// Store is the block-state store. Reads are served from the in-memory set;
// writes go to the database and update the set only on success.
type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	blocked map[int64]struct{}
}

// NewStore creates the table if needed and loads the blocked set.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tracker_state table: %w", err)
	}

	s := &Store{db: db, blocked: make(map[int64]struct{})}
	rows, err := db.Query(`SELECT id FROM tracker_state WHERE state = ?`, int(StateBlocked))
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked trackers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tracker id: %w", err)
		}
		s.blocked[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocked trackers: %w", err)
	}
	return s, nil
}

// Get returns the persisted state for id. Unknown ids are StateUnset.
func (s *Store) Get(id int64) State {
	var state int
	err := s.db.QueryRow(`SELECT state FROM tracker_state WHERE id = ?`, id).Scan(&state)
	if err == sql.ErrNoRows {
		return StateUnset
	}
	if err != nil {
		logger.Error("tracker: get id=%d: %v", id, err)
		return StateUnset
	}
	return State(state)
}

// IsBlocked reports whether id is in the in-memory blocked set.
func (s *Store) IsBlocked(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocked[id]
	return ok
}

// Blocked returns a snapshot of the currently blocked ids.
func (s *Store) Blocked() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.blocked))
	for id := range s.blocked {
		ids = append(ids, id)
	}
	return ids
}

// Upsert writes the state for id asynchronously. Failures are logged and
// leave the in-memory set untouched; done runs once the attempt finishes,
// whether or not it succeeded. Callers cannot observe failure.
func (s *Store) Upsert(id int64, state State, done func()) {
	go func() {
		_, err := s.db.Exec(
			`INSERT INTO tracker_state (id, state) VALUES (?, ?)
			 ON CONFLICT(id) DO UPDATE SET state = excluded.state`,
			id, int(state),
		)
		if err != nil {
			logger.Error("tracker: upsert id=%d state=%s: %v", id, state, err)
		} else {
			s.mu.Lock()
			if state == StateBlocked {
				s.blocked[id] = struct{}{}
			} else {
				delete(s.blocked, id)
			}
			s.mu.Unlock()
		}
		if done != nil {
			done()
		}
	}()
}
