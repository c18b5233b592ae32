package cli

import (
	"errors"
	"fmt"

	"github.com/wirdhq/wird/internal/keyring"
)

type SyncCmd struct {
	Status SyncStatusCmd `cmd:"" help:"Show pending sync events and token state."`
	Token  SyncTokenCmd  `cmd:"" help:"Manage the sync token."`
}

type SyncStatusCmd struct{}

func (c *SyncStatusCmd) Run(ctx *Context) error {
	events, err := ctx.Outbox.Pending()
	if err != nil {
		return err
	}

	fmt.Printf("Outbox: %s\n", ctx.Outbox.Path())
	fmt.Printf("Pending events: %d\n", len(events))

	if _, err := keyring.GetSyncToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("Sync token: not set")
		} else {
			fmt.Printf("Sync token: unavailable (%v)\n", err)
		}
	} else {
		fmt.Println("Sync token: set")
	}

	fmt.Println("\nUploading is not implemented yet; events queue locally.")
	return nil
}

type SyncTokenCmd struct {
	Set   SyncTokenSetCmd   `cmd:"" help:"Store the sync token in the OS keyring."`
	Clear SyncTokenClearCmd `cmd:"" help:"Remove the sync token from the OS keyring."`
}

type SyncTokenSetCmd struct {
	Token string `arg:"" help:"Token value to store."`
}

func (c *SyncTokenSetCmd) Run(ctx *Context) error {
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available on this system")
	}
	if err := keyring.SetSyncToken(c.Token); err != nil {
		return err
	}
	fmt.Println("Sync token stored in the OS keyring.")
	return nil
}

type SyncTokenClearCmd struct{}

func (c *SyncTokenClearCmd) Run(ctx *Context) error {
	err := keyring.DeleteSyncToken()
	if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("No sync token was stored.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Sync token removed.")
	return nil
}
