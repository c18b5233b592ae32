package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wirdhq/wird/internal/models"
)

func sampleState() models.LedgerState {
	addedAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	return models.LedgerState{
		ActiveJourneyIDs: []int{1, 4},
		CustomHabits: []models.CustomHabit{
			{ID: "custom-7", DuaID: 7, TimeSlot: models.SlotAnytime, AddedAt: addedAt},
		},
		HabitCompletions: []models.HabitCompletion{
			{HabitID: "custom-7", Date: "2025-06-14", CompletedAt: addedAt.AddDate(0, 0, 4), XPEarned: 15},
			{HabitID: "journey-1-dua-2", Date: "2025-06-15", CompletedAt: addedAt.AddDate(0, 0, 5), XPEarned: 10},
		},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	store := NewJSONStore(path)

	want := sampleState()
	if err := store.Save(want); err != nil {
		t.Fatalf("failed to save state: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	if !statesEqual(got, want) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
}

// statesEqual compares states via their canonical JSON form, which
// sidesteps time.Time location-pointer differences after a round trip.
func statesEqual(a, b models.LedgerState) bool {
	aj, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bj, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(aj) == string(bj)
}

func TestJSONStoreFirstUseIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	store := NewJSONStore(path)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("load of missing store should not fail: %v", err)
	}
	if len(state.ActiveJourneyIDs) != 0 || len(state.CustomHabits) != 0 || len(state.HabitCompletions) != 0 {
		t.Errorf("expected empty state on first use, got %+v", state)
	}
}

func TestJSONStoreCorruptRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	store := NewJSONStore(path)
	state, err := store.Load()
	if err != nil {
		t.Fatalf("corrupt store must degrade to empty state, got error: %v", err)
	}
	if len(state.ActiveJourneyIDs) != 0 || len(state.CustomHabits) != 0 || len(state.HabitCompletions) != 0 {
		t.Errorf("expected empty state after corrupt load, got %+v", state)
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Fatal("second init should fail on existing store")
	}
}

func TestJSONStoreSaveNormalizesNils(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wird.json")
	store := NewJSONStore(path)

	if err := store.Save(models.LedgerState{}); err != nil {
		t.Fatalf("failed to save zero state: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	for _, key := range []string{"activeJourneyIds", "customHabits", "habitCompletions"} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("persisted document missing %q array", key)
		}
	}
}
