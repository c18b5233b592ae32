// Package ledger implements the local habit-completion and streak-tracking
// engine. A Ledger owns journey subscriptions, custom habits, and the log of
// daily completions, persisting through a storage.Provider with a full
// load-modify-save cycle per mutation.
//
// The ledger is designed for single-writer, serialized access: an internal
// mutex guarantees no two load-modify-save cycles interleave within one
// process. It is not safe for multiple processes sharing a store.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/storage"
	"github.com/wirdhq/wird/internal/utils"
)

type Ledger struct {
	mu    sync.Mutex
	store storage.Provider
	now   func() time.Time
}

type Option func(*Ledger)

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New constructs a ledger over the given store. The ledger is an
// explicitly injected component; callers own the instance.
func New(store storage.Provider, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) today() string {
	return utils.DayKey(l.now())
}

// Journey management

// AddJourney subscribes to a journey. Adding an already-active journey
// is a no-op.
func (l *Ledger) AddJourney(journeyID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return err
	}

	for _, id := range state.ActiveJourneyIDs {
		if id == journeyID {
			return nil
		}
	}

	state.ActiveJourneyIDs = append(state.ActiveJourneyIDs, journeyID)
	return l.store.Save(state)
}

// RemoveJourney unsubscribes from a journey; no-op if not subscribed.
// Historical completions for the journey's habits are preserved.
func (l *Ledger) RemoveJourney(journeyID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return err
	}

	kept := make([]int, 0, len(state.ActiveJourneyIDs))
	found := false
	for _, id := range state.ActiveJourneyIDs {
		if id == journeyID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return nil
	}

	state.ActiveJourneyIDs = kept
	return l.store.Save(state)
}

// IsJourneyActive reports whether the journey is subscribed.
func (l *Ledger) IsJourneyActive(journeyID int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return false, err
	}

	for _, id := range state.ActiveJourneyIDs {
		if id == journeyID {
			return true, nil
		}
	}
	return false, nil
}

// ActiveJourneyIDs returns the subscribed journey ids.
func (l *Ledger) ActiveJourneyIDs() ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return append([]int{}, state.ActiveJourneyIDs...), nil
}

// Custom habit management

// CustomHabitID derives the stable habit id for a custom dua.
func CustomHabitID(duaID int) string {
	return fmt.Sprintf("%s%d", constants.CustomHabitPrefix, duaID)
}

// AddCustomHabit adds a standalone dua as a habit. The id is derived from
// the dua id, so re-adding the same dua returns the stored entry unchanged,
// keeping its original time slot (first slot wins).
func (l *Ledger) AddCustomHabit(duaID int, slot models.TimeSlot) (models.CustomHabit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return models.CustomHabit{}, err
	}

	id := CustomHabitID(duaID)
	for _, h := range state.CustomHabits {
		if h.ID == id {
			return h, nil
		}
	}

	habit := models.CustomHabit{
		ID:       id,
		DuaID:    duaID,
		TimeSlot: slot,
		AddedAt:  l.now(),
	}
	state.CustomHabits = append(state.CustomHabits, habit)
	if err := l.store.Save(state); err != nil {
		return models.CustomHabit{}, err
	}
	return habit, nil
}

// RemoveCustomHabit removes a custom habit by id; no-op if absent.
// Completions recorded for the habit are not touched; history is
// preserved for streak accuracy.
func (l *Ledger) RemoveCustomHabit(habitID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return err
	}

	kept := make([]models.CustomHabit, 0, len(state.CustomHabits))
	found := false
	for _, h := range state.CustomHabits {
		if h.ID == habitID {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return nil
	}

	state.CustomHabits = kept
	return l.store.Save(state)
}

// CustomHabits returns all custom habits in insertion order.
func (l *Ledger) CustomHabits() ([]models.CustomHabit, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	state, err := l.store.Load()
	if err != nil {
		return nil, err
	}
	return append([]models.CustomHabit{}, state.CustomHabits...), nil
}

// Export returns the raw persisted state for inspection or export.
func (l *Ledger) Export() (models.LedgerState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Load()
}

// ClearAllData resets the entire ledger to its empty state.
func (l *Ledger) ClearAllData() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.Save(models.EmptyState())
}
