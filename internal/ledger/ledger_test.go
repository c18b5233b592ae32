package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/models"
)

// memStore is an in-memory Provider for exercising the ledger in isolation.
type memStore struct {
	state   models.LedgerState
	loadErr error
	saveErr error
	saves   int
}

func newMemStore() *memStore {
	return &memStore{state: models.EmptyState()}
}

func (s *memStore) Init() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) Load() (models.LedgerState, error) {
	if s.loadErr != nil {
		return models.LedgerState{}, s.loadErr
	}
	return s.state, nil
}

func (s *memStore) Save(state models.LedgerState) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.state = state
	return nil
}

func (s *memStore) GetConfigPath() string { return "mem" }

func newTestLedger(now time.Time) (*Ledger, *memStore, *time.Time) {
	clock := now
	store := newMemStore()
	l := New(store, WithClock(func() time.Time { return clock }))
	return l, store, &clock
}

var baseDay = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestAddJourneySetSemantics(t *testing.T) {
	l, _, _ := newTestLedger(baseDay)

	if err := l.AddJourney(1); err != nil {
		t.Fatalf("failed to add journey: %v", err)
	}
	if err := l.AddJourney(1); err != nil {
		t.Fatalf("failed to re-add journey: %v", err)
	}

	ids, err := l.ActiveJourneyIDs()
	if err != nil {
		t.Fatalf("failed to get active journeys: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("expected [1], got %v", ids)
	}

	active, err := l.IsJourneyActive(1)
	if err != nil {
		t.Fatalf("failed to check journey: %v", err)
	}
	if !active {
		t.Error("journey 1 should be active")
	}

	if err := l.RemoveJourney(1); err != nil {
		t.Fatalf("failed to remove journey: %v", err)
	}
	ids, err = l.ActiveJourneyIDs()
	if err != nil {
		t.Fatalf("failed to get active journeys: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no journeys, got %v", ids)
	}

	// Removing again is a no-op.
	if err := l.RemoveJourney(1); err != nil {
		t.Fatalf("remove of absent journey should not fail: %v", err)
	}
}

func TestAddCustomHabitIdempotent(t *testing.T) {
	l, _, _ := newTestLedger(baseDay)

	first, err := l.AddCustomHabit(7, models.SlotAnytime)
	if err != nil {
		t.Fatalf("failed to add custom habit: %v", err)
	}
	if first.ID != "custom-7" {
		t.Errorf("expected id custom-7, got %q", first.ID)
	}

	// Re-adding the same dua returns the stored entry unchanged, even
	// with a different slot (first slot wins).
	second, err := l.AddCustomHabit(7, models.SlotEvening)
	if err != nil {
		t.Fatalf("failed to re-add custom habit: %v", err)
	}
	if second.TimeSlot != models.SlotAnytime {
		t.Errorf("expected original slot anytime, got %q", second.TimeSlot)
	}
	if !second.AddedAt.Equal(first.AddedAt) {
		t.Error("re-add should not change AddedAt")
	}

	habits, err := l.CustomHabits()
	if err != nil {
		t.Fatalf("failed to list custom habits: %v", err)
	}
	if len(habits) != 1 {
		t.Errorf("expected 1 custom habit, got %d", len(habits))
	}
}

func TestRemoveCustomHabitKeepsCompletions(t *testing.T) {
	l, store, _ := newTestLedger(baseDay)

	if _, err := l.AddCustomHabit(7, models.SlotAnytime); err != nil {
		t.Fatalf("failed to add custom habit: %v", err)
	}
	if _, err := l.CompleteHabit("custom-7", 15); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	if err := l.RemoveCustomHabit("custom-7"); err != nil {
		t.Fatalf("failed to remove custom habit: %v", err)
	}

	if len(store.state.CustomHabits) != 0 {
		t.Error("custom habit should be removed")
	}
	if len(store.state.HabitCompletions) != 1 {
		t.Error("completion history must survive habit removal")
	}

	// Removing an absent habit is a no-op.
	if err := l.RemoveCustomHabit("custom-99"); err != nil {
		t.Fatalf("remove of absent habit should not fail: %v", err)
	}
}

func TestCompleteHabitIdempotent(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	first, err := l.CompleteHabit("custom-7", 15)
	if err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	// A later double-tap the same day returns the original record.
	*clock = clock.Add(2 * time.Hour)
	second, err := l.CompleteHabit("custom-7", 25)
	if err != nil {
		t.Fatalf("failed to re-complete habit: %v", err)
	}
	if !second.CompletedAt.Equal(first.CompletedAt) {
		t.Error("re-completion must not overwrite CompletedAt")
	}
	if second.XPEarned != 15 {
		t.Errorf("re-completion must keep original XP, got %d", second.XPEarned)
	}

	completions, err := l.CompletionsForToday()
	if err != nil {
		t.Fatalf("failed to get today's completions: %v", err)
	}
	if len(completions) != 1 {
		t.Errorf("expected exactly 1 completion, got %d", len(completions))
	}
}

func TestUncompleteThenRecomplete(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	today := "2025-06-15"
	first, err := l.CompleteHabit("custom-7", 10)
	if err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	if err := l.UncompleteHabit("custom-7", today); err != nil {
		t.Fatalf("failed to uncomplete habit: %v", err)
	}

	done, err := l.IsCompletedToday("custom-7")
	if err != nil {
		t.Fatalf("failed to check completion: %v", err)
	}
	if done {
		t.Error("habit should not be completed after uncomplete")
	}

	*clock = clock.Add(time.Hour)
	second, err := l.CompleteHabit("custom-7", 10)
	if err != nil {
		t.Fatalf("failed to re-complete habit: %v", err)
	}
	if second.CompletedAt.Equal(first.CompletedAt) {
		t.Error("re-completion after removal should create a new record")
	}

	// Uncompleting a day with no record is a no-op.
	if err := l.UncompleteHabit("custom-7", "2025-06-01"); err != nil {
		t.Fatalf("uncomplete of absent record should not fail: %v", err)
	}
}

func TestStreakTodayMissing(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	// Complete on D-2 and D-1, nothing today.
	*clock = baseDay.AddDate(0, 0, -2)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay.AddDate(0, 0, -1)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != 2 {
		t.Errorf("expected streak 2 with today missing, got %d", streak)
	}
}

func TestStreakWithGap(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	// Completions on D-1 and D-3, nothing on D-2 or today.
	*clock = baseDay.AddDate(0, 0, -3)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay.AddDate(0, 0, -1)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected streak 1 across gap, got %d", streak)
	}
}

func TestStreakEmpty(t *testing.T) {
	l, _, _ := newTestLedger(baseDay)

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != 0 {
		t.Errorf("expected streak 0 with no completions, got %d", streak)
	}
}

func TestStreakIncludesToday(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	*clock = baseDay.AddDate(0, 0, -1)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != 2 {
		t.Errorf("expected streak 2 including today, got %d", streak)
	}
}

func TestStreakLookbackBound(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	// Complete every day for well over a year.
	for offset := 400; offset >= 0; offset-- {
		*clock = baseDay.AddDate(0, 0, -offset)
		if _, err := l.CompleteHabit("custom-1", 5); err != nil {
			t.Fatalf("failed to complete habit at offset %d: %v", offset, err)
		}
	}
	*clock = baseDay

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != constants.MaxStreakLookbackDays {
		t.Errorf("expected streak capped at %d, got %d", constants.MaxStreakLookbackDays, streak)
	}
}

func TestCompletionHistoryWindow(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	*clock = baseDay.AddDate(0, 0, -2)
	if _, err := l.CompleteHabit("custom-1", 5); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}
	*clock = baseDay
	if _, err := l.CompleteHabit("custom-2", 10); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	history, err := l.CompletionHistory(3)
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 days of history, got %d", len(history))
	}
	if len(history["2025-06-15"]) != 1 {
		t.Errorf("expected 1 completion today, got %d", len(history["2025-06-15"]))
	}
	if len(history["2025-06-14"]) != 0 {
		t.Errorf("expected empty day for 2025-06-14, got %d", len(history["2025-06-14"]))
	}
	if len(history["2025-06-13"]) != 1 {
		t.Errorf("expected 1 completion on 2025-06-13, got %d", len(history["2025-06-13"]))
	}
}

func TestClearOldCompletions(t *testing.T) {
	l, _, clock := newTestLedger(baseDay)

	// One completion per day across 40 days (offsets 0..39).
	for offset := 39; offset >= 0; offset-- {
		*clock = baseDay.AddDate(0, 0, -offset)
		if _, err := l.CompleteHabit("custom-1", 5); err != nil {
			t.Fatalf("failed to complete habit at offset %d: %v", offset, err)
		}
	}
	*clock = baseDay

	removed, err := l.ClearOldCompletions(30)
	if err != nil {
		t.Fatalf("failed to clear old completions: %v", err)
	}
	// Offsets 31..39 are older than 30 days before today.
	if removed != 9 {
		t.Errorf("expected 9 removed, got %d", removed)
	}

	// The retained window has no gaps.
	history, err := l.CompletionHistory(30)
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	for day, completions := range history {
		if len(completions) != 1 {
			t.Errorf("day %s: expected 1 completion, got %d", day, len(completions))
		}
	}

	// A second cleanup finds nothing and skips the save.
	removed, err = l.ClearOldCompletions(30)
	if err != nil {
		t.Fatalf("failed to re-clear: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed on second pass, got %d", removed)
	}
}

func TestTodayProgressScenario(t *testing.T) {
	l, _, _ := newTestLedger(baseDay)

	if err := l.AddJourney(1); err != nil {
		t.Fatalf("failed to add journey: %v", err)
	}
	if _, err := l.AddCustomHabit(7, models.SlotAnytime); err != nil {
		t.Fatalf("failed to add custom habit: %v", err)
	}
	if _, err := l.CompleteHabit("custom-7", 15); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	progress, err := l.GetTodayProgress(1)
	if err != nil {
		t.Fatalf("failed to get progress: %v", err)
	}
	if progress.Completed != 1 || progress.Total != 1 || progress.XPEarned != 15 {
		t.Errorf("expected {1 1 15}, got %+v", progress)
	}

	streak, err := l.Streak()
	if err != nil {
		t.Fatalf("failed to compute streak: %v", err)
	}
	if streak != 1 {
		t.Errorf("expected streak 1, got %d", streak)
	}
}

func TestSaveFailurePropagates(t *testing.T) {
	l, store, _ := newTestLedger(baseDay)

	if err := l.AddJourney(1); err != nil {
		t.Fatalf("failed to add journey: %v", err)
	}

	store.saveErr = errors.New("disk full")
	if _, err := l.CompleteHabit("custom-7", 15); err == nil {
		t.Fatal("expected save failure to propagate")
	}

	// The failed mutation must not leave partial state behind.
	store.saveErr = nil
	done, err := l.IsCompletedToday("custom-7")
	if err != nil {
		t.Fatalf("failed to check completion: %v", err)
	}
	if done {
		t.Error("failed save must not record a completion")
	}
}

func TestClearAllData(t *testing.T) {
	l, _, _ := newTestLedger(baseDay)

	if err := l.AddJourney(3); err != nil {
		t.Fatalf("failed to add journey: %v", err)
	}
	if _, err := l.AddCustomHabit(2, models.SlotMorning); err != nil {
		t.Fatalf("failed to add custom habit: %v", err)
	}
	if _, err := l.CompleteHabit("custom-2", 20); err != nil {
		t.Fatalf("failed to complete habit: %v", err)
	}

	if err := l.ClearAllData(); err != nil {
		t.Fatalf("failed to clear data: %v", err)
	}

	state, err := l.Export()
	if err != nil {
		t.Fatalf("failed to export state: %v", err)
	}
	if len(state.ActiveJourneyIDs) != 0 || len(state.CustomHabits) != 0 || len(state.HabitCompletions) != 0 {
		t.Errorf("expected empty state after reset, got %+v", state)
	}
}
