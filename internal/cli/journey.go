package cli

import (
	"fmt"
)

type JourneyCmd struct {
	List   JourneyListCmd   `cmd:"" help:"List available journeys."`
	Add    JourneyAddCmd    `cmd:"" help:"Subscribe to a journey."`
	Remove JourneyRemoveCmd `cmd:"" help:"Unsubscribe from a journey."`
	Show   JourneyShowCmd   `cmd:"" help:"Show the duas of a journey."`
}

type JourneyListCmd struct{}

func (c *JourneyListCmd) Run(ctx *Context) error {
	journeys := ctx.Catalog.Journeys()
	if len(journeys) == 0 {
		fmt.Println("No journeys available.")
		return nil
	}

	activeIDs, err := ctx.Ledger.ActiveJourneyIDs()
	if err != nil {
		return err
	}
	active := make(map[int]bool, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = true
	}

	for _, j := range journeys {
		marker := " "
		if active[j.ID] {
			marker = "✓"
		}
		fmt.Printf("%s [%d] %s — %s\n", marker, j.ID, j.Name, j.Description)
	}
	return nil
}

type JourneyAddCmd struct {
	ID int `arg:"" help:"Journey id to subscribe to."`
}

func (c *JourneyAddCmd) Run(ctx *Context) error {
	journey, ok := ctx.Catalog.Journey(c.ID)
	if !ok {
		return fmt.Errorf("journey %d not found", c.ID)
	}

	if err := ctx.Ledger.AddJourney(c.ID); err != nil {
		return err
	}

	fmt.Printf("Subscribed to journey: %s\n", journey.Name)
	ctx.PerformAutomaticBackup()
	return nil
}

type JourneyRemoveCmd struct {
	ID int `arg:"" help:"Journey id to unsubscribe from."`
}

func (c *JourneyRemoveCmd) Run(ctx *Context) error {
	active, err := ctx.Ledger.IsJourneyActive(c.ID)
	if err != nil {
		return err
	}
	if !active {
		fmt.Printf("Journey %d is not active.\n", c.ID)
		return nil
	}

	if err := ctx.Ledger.RemoveJourney(c.ID); err != nil {
		return err
	}

	name := fmt.Sprintf("journey %d", c.ID)
	if journey, ok := ctx.Catalog.Journey(c.ID); ok {
		name = journey.Name
	}
	fmt.Printf("Unsubscribed from %s. Past completions are kept.\n", name)
	return nil
}

type JourneyShowCmd struct {
	ID int `arg:"" help:"Journey id to show."`
}

func (c *JourneyShowCmd) Run(ctx *Context) error {
	journey, ok := ctx.Catalog.Journey(c.ID)
	if !ok {
		return fmt.Errorf("journey %d not found", c.ID)
	}

	fmt.Printf("%s\n%s\n\n", journey.Name, journey.Description)
	for _, jd := range ctx.Catalog.JourneyDuas(c.ID) {
		dua, ok := ctx.Catalog.Dua(jd.DuaID)
		if !ok {
			continue
		}
		fmt.Printf("  [%d] %-45s %s (%d XP)\n", dua.ID, dua.Title, jd.TimeSlot, dua.XPValue)
	}
	return nil
}
