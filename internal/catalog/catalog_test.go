package catalog

import (
	"testing"
	"time"

	"github.com/wirdhq/wird/internal/models"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("failed to load embedded catalog: %v", err)
	}
	return c
}

func TestEmbeddedSeedIsConsistent(t *testing.T) {
	c := mustCatalog(t)

	if len(c.Journeys()) == 0 {
		t.Fatal("seed contains no journeys")
	}
	for _, j := range c.Journeys() {
		duas := c.JourneyDuas(j.ID)
		if len(duas) == 0 {
			t.Errorf("journey %d (%s) has no duas", j.ID, j.Name)
		}
		for _, jd := range duas {
			if _, ok := c.Dua(jd.DuaID); !ok {
				t.Errorf("journey %d references unknown dua %d", j.ID, jd.DuaID)
			}
			if !jd.TimeSlot.Valid() {
				t.Errorf("journey %d dua %d has invalid slot %q", j.ID, jd.DuaID, jd.TimeSlot)
			}
		}
	}
}

func TestJourneyDuasOrdered(t *testing.T) {
	c := mustCatalog(t)

	duas := c.JourneyDuas(1)
	for i := 1; i < len(duas); i++ {
		if duas[i-1].SortOrder > duas[i].SortOrder {
			t.Errorf("journey 1 duas out of order at %d: %d > %d", i, duas[i-1].SortOrder, duas[i].SortOrder)
		}
	}
}

func TestJourneyHabitID(t *testing.T) {
	if got := JourneyHabitID(2, 5); got != "journey-2-dua-5" {
		t.Errorf("expected journey-2-dua-5, got %q", got)
	}
}

func TestHabitsForTodayJoinsJourneysAndCustoms(t *testing.T) {
	c := mustCatalog(t)

	state := models.LedgerState{
		ActiveJourneyIDs: []int{1},
		CustomHabits: []models.CustomHabit{
			{ID: "custom-7", DuaID: 7, TimeSlot: models.SlotAnytime, AddedAt: time.Now()},
		},
	}

	items := c.HabitsForToday(state)
	want := len(c.JourneyDuas(1)) + 1
	if len(items) != want {
		t.Fatalf("expected %d habits, got %d", want, len(items))
	}

	byID := make(map[string]HabitItem, len(items))
	for _, it := range items {
		byID[it.HabitID] = it
	}

	first, ok := byID["journey-1-dua-6"]
	if !ok {
		t.Fatal("missing journey habit journey-1-dua-6")
	}
	if first.Source != SourceJourney || first.JourneyID != 1 {
		t.Errorf("unexpected journey habit attribution: %+v", first)
	}
	if first.XP == 0 {
		t.Error("journey habit missing XP value from catalog")
	}

	custom, ok := byID["custom-7"]
	if !ok {
		t.Fatal("missing custom habit custom-7")
	}
	if custom.Source != SourceCustom || custom.Title == "" {
		t.Errorf("unexpected custom habit join: %+v", custom)
	}
}

func TestHabitsForTodayGroupsBySlot(t *testing.T) {
	c := mustCatalog(t)

	state := models.LedgerState{
		ActiveJourneyIDs: []int{1, 2},
		CustomHabits: []models.CustomHabit{
			{ID: "custom-9", DuaID: 9, TimeSlot: models.SlotAnytime, AddedAt: time.Now()},
		},
	}

	items := c.HabitsForToday(state)
	lastRank := -1
	for _, it := range items {
		rank := slotRank(it.TimeSlot)
		if rank < lastRank {
			t.Fatalf("habit %s (%s) appears after a later slot", it.HabitID, it.TimeSlot)
		}
		lastRank = rank
	}
}

func TestHabitsForTodaySkipsUnknownContent(t *testing.T) {
	c := mustCatalog(t)

	state := models.LedgerState{
		CustomHabits: []models.CustomHabit{
			{ID: "custom-999", DuaID: 999, TimeSlot: models.SlotAnytime, AddedAt: time.Now()},
		},
	}
	if items := c.HabitsForToday(state); len(items) != 0 {
		t.Errorf("expected unknown dua to be skipped, got %+v", items)
	}
}
