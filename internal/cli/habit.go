package cli

import (
	"fmt"

	"github.com/wirdhq/wird/internal/ledger"
	"github.com/wirdhq/wird/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Track a dua as a custom habit."`
	Remove HabitRemoveCmd `cmd:"" help:"Stop tracking a custom habit."`
	List   HabitListCmd   `cmd:"" help:"List custom habits."`
}

type HabitAddCmd struct {
	DuaID int    `arg:"" help:"Dua id to track."`
	Slot  string `help:"Time slot: morning, anytime, or evening." default:"anytime"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	dua, ok := ctx.Catalog.Dua(c.DuaID)
	if !ok {
		return fmt.Errorf("dua %d not found", c.DuaID)
	}

	slot := models.TimeSlot(c.Slot)
	if !slot.Valid() {
		return fmt.Errorf("invalid time slot: %s (expected morning, anytime, or evening)", c.Slot)
	}

	habit, err := ctx.Ledger.AddCustomHabit(c.DuaID, slot)
	if err != nil {
		return err
	}

	if habit.TimeSlot != slot {
		fmt.Printf("Already tracking %q (slot %s kept).\n", dua.Title, habit.TimeSlot)
		return nil
	}
	fmt.Printf("Tracking %q (%s).\n", dua.Title, habit.TimeSlot)
	ctx.PerformAutomaticBackup()
	return nil
}

type HabitRemoveCmd struct {
	DuaID int `arg:"" help:"Dua id to stop tracking."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Ledger.RemoveCustomHabit(ledger.CustomHabitID(c.DuaID)); err != nil {
		return err
	}
	fmt.Printf("Stopped tracking dua %d. Past completions are kept.\n", c.DuaID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Ledger.CustomHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No custom habits. Add one with 'wird habit add <dua-id>'.")
		return nil
	}

	for _, h := range habits {
		title := fmt.Sprintf("dua %d", h.DuaID)
		if dua, ok := ctx.Catalog.Dua(h.DuaID); ok {
			title = dua.Title
		}
		fmt.Printf("[%d] %-45s %s\n", h.DuaID, title, h.TimeSlot)
	}
	return nil
}
