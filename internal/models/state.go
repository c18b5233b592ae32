package models

// LedgerState is the entire persisted unit: one logical record per
// user/device. It is read in full and written in full on every mutation.
type LedgerState struct {
	ActiveJourneyIDs []int             `json:"activeJourneyIds"`
	CustomHabits     []CustomHabit     `json:"customHabits"`
	HabitCompletions []HabitCompletion `json:"habitCompletions"`
}

// EmptyState returns the state a fresh ledger starts from.
func EmptyState() LedgerState {
	return LedgerState{
		ActiveJourneyIDs: []int{},
		CustomHabits:     []CustomHabit{},
		HabitCompletions: []HabitCompletion{},
	}
}

// Normalize ensures the collections are non-nil so that serialized
// output always carries the three arrays.
func (s *LedgerState) Normalize() {
	if s.ActiveJourneyIDs == nil {
		s.ActiveJourneyIDs = []int{}
	}
	if s.CustomHabits == nil {
		s.CustomHabits = []CustomHabit{}
	}
	if s.HabitCompletions == nil {
		s.HabitCompletions = []HabitCompletion{}
	}
}
