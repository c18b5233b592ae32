package models

// Dua is a catalog entry: one supplication with its reward value.
// Content is owned by the catalog, never by the ledger; the ledger
// references duas by their integer id only.
type Dua struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	XPValue         int    `json:"xpValue"`
}

// Journey is a curated, ordered set of duas a user subscribes to as a unit.
type Journey struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// JourneyDua associates a dua with a journey, carrying the time slot and
// display ordering for that journey.
type JourneyDua struct {
	JourneyID int      `json:"journeyId"`
	DuaID     int      `json:"duaId"`
	TimeSlot  TimeSlot `json:"timeSlot"`
	SortOrder int      `json:"sortOrder"`
}
