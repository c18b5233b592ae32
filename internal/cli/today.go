package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/wirdhq/wird/internal/models"
	"github.com/wirdhq/wird/internal/utils"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	state, err := ctx.Ledger.Export()
	if err != nil {
		return err
	}

	items := ctx.Catalog.HabitsForToday(state)
	if len(items) == 0 {
		fmt.Println("Nothing to practice today. Subscribe to a journey or add a custom habit.")
		return nil
	}

	done, err := ctx.Ledger.CompletedHabitIDsForToday()
	if err != nil {
		return err
	}

	fmt.Printf("Practice for %s:\n\n", utils.Today())
	var lastSlot models.TimeSlot
	for _, item := range items {
		if item.TimeSlot != lastSlot {
			fmt.Printf("%s:\n", item.TimeSlot)
			lastSlot = item.TimeSlot
		}
		status := "[ ]"
		if done[item.HabitID] {
			status = "[x]"
		}
		fmt.Printf("  %s %-45s %d XP  (%s)\n", status, item.Title, item.XP, item.HabitID)
	}

	progress, err := ctx.Ledger.GetTodayProgress(len(items))
	if err != nil {
		return err
	}
	streak, err := ctx.Ledger.Streak()
	if err != nil {
		return err
	}

	fmt.Printf("\nCompleted: %d/%d  •  %d XP today  •  %d day streak\n",
		progress.Completed, progress.Total, progress.XPEarned, streak)
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	streak, err := ctx.Ledger.Streak()
	if err != nil {
		return err
	}

	switch streak {
	case 0:
		fmt.Println("No streak yet. Complete a dua today to start one.")
	case 1:
		fmt.Println("1 day streak. Keep going!")
	default:
		fmt.Printf("%d day streak.\n", streak)
	}
	return nil
}

type LogCmd struct {
	Days int `help:"Number of days to show." default:"14"`
}

func (c *LogCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}

	history, err := ctx.Ledger.CompletionHistory(c.Days)
	if err != nil {
		return err
	}

	days := make([]string, 0, len(history))
	for day := range history {
		days = append(days, day)
	}
	sort.Strings(days)

	fmt.Printf("Practice log (last %d days):\n\n", c.Days)
	for _, day := range days {
		completions := history[day]
		xp := 0
		for _, comp := range completions {
			xp += comp.XPEarned
		}
		weekday := ""
		if t, err := time.Parse("2006-01-02", day); err == nil {
			weekday = t.Format("Mon")
		}
		marker := "."
		if len(completions) > 0 {
			marker = "x"
		}
		fmt.Printf("%s %s  %s  %2d completed  %3d XP\n", day, weekday, marker, len(completions), xp)
	}
	return nil
}
