package ledger

import (
	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/utils"
)

// TodayProgress summarizes a day's practice for display.
type TodayProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	XPEarned  int `json:"xpEarned"`
}

// GetTodayProgress counts today's completions and sums their XP. The
// ledger does not know the universe of today's habits; the caller joins
// content against active journeys and supplies totalHabits.
func (l *Ledger) GetTodayProgress(totalHabits int) (TodayProgress, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return TodayProgress{}, err
	}

	progress := TodayProgress{Total: totalHabits}
	today := l.today()
	for _, c := range state.HabitCompletions {
		if c.Date == today {
			progress.Completed++
			progress.XPEarned += c.XPEarned
		}
	}
	return progress, nil
}

// Streak returns the count of consecutive days ending at today that have
// at least one completion. Today itself is a grace day: a user who has not
// yet practiced today but did yesterday still sees yesterday's streak.
// Any earlier missing day terminates the walk. The lookback is bounded to
// a year as a safety limit.
func (l *Ledger) Streak() (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return 0, err
	}

	days := make(map[string]bool, len(state.HabitCompletions))
	for _, c := range state.HabitCompletions {
		days[c.Date] = true
	}

	now := l.now()
	streak := 0
	for offset := 0; offset < constants.MaxStreakLookbackDays; offset++ {
		day := utils.DayKey(now.AddDate(0, 0, -offset))
		if days[day] {
			streak++
			continue
		}
		if offset == 0 {
			// Today can be missing without breaking the streak.
			continue
		}
		break
	}
	return streak, nil
}

// CompletionHistory returns, for each of the last `days` calendar days
// including today, the completions recorded that day (possibly empty).
func (l *Ledger) CompletionHistory(days int) (map[string][]models.HabitCompletion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.HabitCompletion, len(state.HabitCompletions))
	for _, c := range state.HabitCompletions {
		byDate[c.Date] = append(byDate[c.Date], c)
	}

	now := l.now()
	history := make(map[string][]models.HabitCompletion, days)
	for offset := 0; offset < days; offset++ {
		day := utils.DayKey(now.AddDate(0, 0, -offset))
		if completions, ok := byDate[day]; ok {
			history[day] = completions
		} else {
			history[day] = []models.HabitCompletion{}
		}
	}
	return history, nil
}
