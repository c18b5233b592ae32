package ledger

import (
	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/utils"
)

// CompleteHabit records that the habit was practiced today. The operation
// is idempotent per (habit, local day): if a completion already exists for
// today it is returned unmodified, so XP is awarded at most once per habit
// per day no matter how often the caller retries.
func (l *Ledger) CompleteHabit(habitID string, xpEarned int) (models.HabitCompletion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return models.HabitCompletion{}, err
	}

	today := l.today()
	for _, c := range state.HabitCompletions {
		if c.HabitID == habitID && c.Date == today {
			return c, nil
		}
	}

	completion := models.HabitCompletion{
		HabitID:     habitID,
		Date:        today,
		CompletedAt: l.now(),
		XPEarned:    xpEarned,
	}
	state.HabitCompletions = append(state.HabitCompletions, completion)
	if err := l.store.Save(state); err != nil {
		return models.HabitCompletion{}, err
	}
	return completion, nil
}

// UncompleteHabit removes the completion for (habit, date) if present;
// no-op otherwise. The date parameter allows correcting past days.
func (l *Ledger) UncompleteHabit(habitID, date string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return err
	}

	kept := make([]models.HabitCompletion, 0, len(state.HabitCompletions))
	found := false
	for _, c := range state.HabitCompletions {
		if c.HabitID == habitID && c.Date == date {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return nil
	}

	state.HabitCompletions = kept
	return l.store.Save(state)
}

// IsCompletedToday reports whether a completion exists for (habit, today).
func (l *Ledger) IsCompletedToday(habitID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return false, err
	}

	today := l.today()
	for _, c := range state.HabitCompletions {
		if c.HabitID == habitID && c.Date == today {
			return true, nil
		}
	}
	return false, nil
}

// CompletionsForDate returns the completions recorded on the given day.
func (l *Ledger) CompletionsForDate(date string) ([]models.HabitCompletion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return completionsOn(state, date), nil
}

// CompletionsForToday returns today's completions.
func (l *Ledger) CompletionsForToday() ([]models.HabitCompletion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return completionsOn(state, l.today()), nil
}

// CompletedHabitIDsForToday returns the set of habit ids completed today.
func (l *Ledger) CompletedHabitIDsForToday() (map[string]bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}

	today := l.today()
	ids := make(map[string]bool)
	for _, c := range state.HabitCompletions {
		if c.Date == today {
			ids[c.HabitID] = true
		}
	}
	return ids, nil
}

// ClearOldCompletions removes completions whose date is older than
// keepDays before today and returns the number removed. Journeys and
// custom habits are unaffected.
func (l *Ledger) ClearOldCompletions(keepDays int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return 0, err
	}

	cutoff := utils.DayKey(l.now().AddDate(0, 0, -keepDays))

	kept := make([]models.HabitCompletion, 0, len(state.HabitCompletions))
	removed := 0
	for _, c := range state.HabitCompletions {
		// YYYY-MM-DD strings order lexicographically by day.
		if c.Date < cutoff {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return 0, nil
	}

	state.HabitCompletions = kept
	if err := l.store.Save(state); err != nil {
		return 0, err
	}
	return removed, nil
}

func completionsOn(state models.LedgerState, date string) []models.HabitCompletion {
	completions := []models.HabitCompletion{}
	for _, c := range state.HabitCompletions {
		if c.Date == date {
			completions = append(completions, c)
		}
	}
	return completions
}
