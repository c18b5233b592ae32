package models

import "time"

// TimeSlot categorizes when during the day a habit is practiced.
// It is descriptive metadata only; the ledger stores it but never
// interprets it beyond grouping for display.
type TimeSlot string

const (
	SlotMorning TimeSlot = "morning"
	SlotAnytime TimeSlot = "anytime"
	SlotEvening TimeSlot = "evening"
)

// Valid reports whether s is one of the known time slots.
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotMorning, SlotAnytime, SlotEvening:
		return true
	}
	return false
}

// CustomHabit is a standalone dua the user tracks outside any journey.
// Its id is derived from the dua id, so a dua can appear as a custom
// habit at most once.
type CustomHabit struct {
	ID       string    `json:"id"`
	DuaID    int       `json:"duaId"`
	TimeSlot TimeSlot  `json:"timeSlot"`
	AddedAt  time.Time `json:"addedAt"`
}

// HabitCompletion records that a habit was practiced on a given local
// calendar day. At most one completion exists per (habit, day).
type HabitCompletion struct {
	HabitID     string    `json:"habitId"`
	Date        string    `json:"date"` // YYYY-MM-DD, local calendar day
	CompletedAt time.Time `json:"completedAt"`
	XPEarned    int       `json:"xpEarned"`
}
