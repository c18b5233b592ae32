package sqlite

import (
	"errors"
	"fmt"
	"time"

	"github.com/wirdhq/wird/internal/logger"
	"github.com/wirdhq/wird/internal/models"
)

// errCorruptState marks rows that decode but cannot be interpreted.
// Only these degrade to an empty ledger on load.
var errCorruptState = errors.New("corrupt ledger state")

// Load reads the full ledger state. Rows with unparseable timestamps
// degrade to an empty state with a warning: local gamification data is
// not worth blocking the user over. Query and scan failures propagate
// as errors.
func (s *Store) Load() (models.LedgerState, error) {
	if err := s.open(); err != nil {
		return models.LedgerState{}, err
	}

	state, err := s.readState()
	if err != nil {
		if errors.Is(err, errCorruptState) {
			logger.Warn("Discarding corrupt ledger state", "path", s.path, "error", err)
			return models.EmptyState(), nil
		}
		return models.LedgerState{}, err
	}
	return state, nil
}

func (s *Store) readState() (models.LedgerState, error) {
	state := models.EmptyState()

	rows, err := s.db.Query(`SELECT journey_id FROM active_journeys ORDER BY journey_id`)
	if err != nil {
		return state, err
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return state, err
		}
		state.ActiveJourneyIDs = append(state.ActiveJourneyIDs, id)
	}
	if err := rows.Err(); err != nil {
		return state, err
	}

	habitRows, err := s.db.Query(`
		SELECT id, dua_id, time_slot, added_at
		FROM custom_habits ORDER BY position`)
	if err != nil {
		return state, err
	}
	defer habitRows.Close()
	for habitRows.Next() {
		var h models.CustomHabit
		var addedAt string
		if err := habitRows.Scan(&h.ID, &h.DuaID, &h.TimeSlot, &addedAt); err != nil {
			return state, err
		}
		h.AddedAt, err = time.Parse(time.RFC3339, addedAt)
		if err != nil {
			return state, fmt.Errorf("%w: bad added_at for habit %s: %v", errCorruptState, h.ID, err)
		}
		state.CustomHabits = append(state.CustomHabits, h)
	}
	if err := habitRows.Err(); err != nil {
		return state, err
	}

	completionRows, err := s.db.Query(`
		SELECT habit_id, day, completed_at, xp_earned
		FROM habit_completions ORDER BY day, habit_id`)
	if err != nil {
		return state, err
	}
	defer completionRows.Close()
	for completionRows.Next() {
		var c models.HabitCompletion
		var completedAt string
		if err := completionRows.Scan(&c.HabitID, &c.Date, &completedAt, &c.XPEarned); err != nil {
			return state, err
		}
		c.CompletedAt, err = time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return state, fmt.Errorf("%w: bad completed_at for habit %s on %s: %v", errCorruptState, c.HabitID, c.Date, err)
		}
		state.HabitCompletions = append(state.HabitCompletions, c)
	}
	if err := completionRows.Err(); err != nil {
		return state, err
	}

	return state, nil
}

// Save rewrites the full state in a single transaction, matching the
// load-full/write-full discipline of the ledger.
func (s *Store) Save(state models.LedgerState) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}

	for _, table := range []string{"active_journeys", "custom_habits", "habit_completions"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, id := range state.ActiveJourneyIDs {
		if _, err := tx.Exec(`INSERT INTO active_journeys (journey_id) VALUES (?)`, id); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to write journey %d: %w", id, err)
		}
	}

	for i, h := range state.CustomHabits {
		if _, err := tx.Exec(`
			INSERT INTO custom_habits (id, dua_id, time_slot, added_at, position)
			VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.DuaID, string(h.TimeSlot), h.AddedAt.Format(time.RFC3339), i); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to write custom habit %s: %w", h.ID, err)
		}
	}

	for _, c := range state.HabitCompletions {
		if _, err := tx.Exec(`
			INSERT INTO habit_completions (habit_id, day, completed_at, xp_earned)
			VALUES (?, ?, ?, ?)`,
			c.HabitID, c.Date, c.CompletedAt.Format(time.RFC3339), c.XPEarned); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to write completion %s/%s: %w", c.HabitID, c.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}
