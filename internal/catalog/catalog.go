// Package catalog provides the read-only dua and journey content the
// ledger's habit ids refer to. The seed ships embedded in the binary so
// the app works fully offline.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/wirdhq/wird/internal/models"
)

//go:embed data/content.json
var seedJSON []byte

type content struct {
	Duas        []models.Dua        `json:"duas"`
	Journeys    []models.Journey    `json:"journeys"`
	JourneyDuas []models.JourneyDua `json:"journeyDuas"`
}

// HabitSource distinguishes where a habit on the today list came from.
type HabitSource string

const (
	SourceJourney HabitSource = "journey"
	SourceCustom  HabitSource = "custom"
)

// HabitItem is a display-ready habit: a ledger habit id joined with its
// catalog content.
type HabitItem struct {
	HabitID  string
	DuaID    int
	Title    string
	TimeSlot models.TimeSlot
	XP       int
	Source   HabitSource
	// JourneyID is set only for journey-sourced habits.
	JourneyID int
}

// Catalog is the parsed embedded seed with id lookups precomputed.
type Catalog struct {
	duas     map[int]models.Dua
	journeys map[int]models.Journey

	journeyOrder []models.Journey
	journeyDuas  map[int][]models.JourneyDua
}

// New parses the embedded seed. It fails only if the embedded data is
// malformed, which is a build defect rather than a runtime condition.
func New() (*Catalog, error) {
	var c content
	if err := json.Unmarshal(seedJSON, &c); err != nil {
		return nil, fmt.Errorf("failed to parse embedded content: %w", err)
	}

	cat := &Catalog{
		duas:         make(map[int]models.Dua, len(c.Duas)),
		journeys:     make(map[int]models.Journey, len(c.Journeys)),
		journeyOrder: c.Journeys,
		journeyDuas:  make(map[int][]models.JourneyDua),
	}
	for _, d := range c.Duas {
		cat.duas[d.ID] = d
	}
	for _, j := range c.Journeys {
		cat.journeys[j.ID] = j
	}
	for _, jd := range c.JourneyDuas {
		cat.journeyDuas[jd.JourneyID] = append(cat.journeyDuas[jd.JourneyID], jd)
	}
	for id := range cat.journeyDuas {
		duas := cat.journeyDuas[id]
		sort.SliceStable(duas, func(a, b int) bool {
			return duas[a].SortOrder < duas[b].SortOrder
		})
	}
	return cat, nil
}

// Dua looks up a dua by id.
func (c *Catalog) Dua(id int) (models.Dua, bool) {
	d, ok := c.duas[id]
	return d, ok
}

// Journey looks up a journey by id.
func (c *Catalog) Journey(id int) (models.Journey, bool) {
	j, ok := c.journeys[id]
	return j, ok
}

// Journeys returns all journeys in seed order.
func (c *Catalog) Journeys() []models.Journey {
	out := make([]models.Journey, len(c.journeyOrder))
	copy(out, c.journeyOrder)
	return out
}

// JourneyDuas returns the duas of a journey ordered by sort order.
func (c *Catalog) JourneyDuas(journeyID int) []models.JourneyDua {
	duas := c.journeyDuas[journeyID]
	out := make([]models.JourneyDua, len(duas))
	copy(out, duas)
	return out
}

// JourneyHabitID builds the ledger habit id for a dua within a journey.
func JourneyHabitID(journeyID, duaID int) string {
	return fmt.Sprintf("journey-%d-dua-%d", journeyID, duaID)
}

// HabitsForToday joins the ledger state against the catalog: every dua
// of every active journey, followed by custom habits in insertion
// order, grouped morning first, then anytime, then evening. Habits
// referencing content missing from the seed are skipped.
func (c *Catalog) HabitsForToday(state models.LedgerState) []HabitItem {
	var items []HabitItem

	for _, journeyID := range state.ActiveJourneyIDs {
		for _, jd := range c.journeyDuas[journeyID] {
			dua, ok := c.duas[jd.DuaID]
			if !ok {
				continue
			}
			items = append(items, HabitItem{
				HabitID:   JourneyHabitID(journeyID, jd.DuaID),
				DuaID:     jd.DuaID,
				Title:     dua.Title,
				TimeSlot:  jd.TimeSlot,
				XP:        dua.XPValue,
				Source:    SourceJourney,
				JourneyID: journeyID,
			})
		}
	}

	for _, h := range state.CustomHabits {
		dua, ok := c.duas[h.DuaID]
		if !ok {
			continue
		}
		items = append(items, HabitItem{
			HabitID:  h.ID,
			DuaID:    h.DuaID,
			Title:    dua.Title,
			TimeSlot: h.TimeSlot,
			XP:       dua.XPValue,
			Source:   SourceCustom,
		})
	}

	sort.SliceStable(items, func(a, b int) bool {
		return slotRank(items[a].TimeSlot) < slotRank(items[b].TimeSlot)
	})
	return items
}

func slotRank(slot models.TimeSlot) int {
	switch slot {
	case models.SlotMorning:
		return 0
	case models.SlotEvening:
		return 2
	default:
		return 1
	}
}
