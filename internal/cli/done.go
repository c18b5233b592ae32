package cli

import (
	"fmt"

	"github.com/wirdhq/wird/internal/utils"
)

type DoneCmd struct {
	Habit string `arg:"" help:"Habit id to mark completed (see 'wird today')."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	item, err := ctx.FindHabit(c.Habit)
	if err != nil {
		return err
	}

	already, err := ctx.Ledger.IsCompletedToday(c.Habit)
	if err != nil {
		return err
	}

	completion, err := ctx.Ledger.CompleteHabit(c.Habit, item.XP)
	if err != nil {
		return err
	}

	if already {
		fmt.Printf("%q is already completed today.\n", item.Title)
		return nil
	}

	fmt.Printf("Completed %q (+%d XP).\n", item.Title, completion.XPEarned)
	ctx.QueueCompletionEvent(completion)
	ctx.PerformAutomaticBackup()
	return nil
}

type UndoCmd struct {
	Habit string `arg:"" help:"Habit id to unmark."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *UndoCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidDate(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}

	if err := ctx.Ledger.UncompleteHabit(c.Habit, date); err != nil {
		return err
	}

	fmt.Printf("Unmarked %s for %s.\n", c.Habit, date)
	ctx.QueueReversalEvent(c.Habit, date)
	return nil
}
