// Package sync queues completion events for a future cloud sync. Events
// are appended to a local JSONL outbox next to the ledger store; nothing
// in this package talks to the network.
package sync

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/wirdhq/wird/internal/constants"
	"github.com/wirdhq/wird/internal/models"
)

type EventType string

const (
	EventCompletion EventType = "completion"
	EventReversal   EventType = "reversal"
)

// Event is one queued ledger change. IDs are generated locally so a
// future uploader can deduplicate retries.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	HabitID    string    `json:"habitId"`
	Date       string    `json:"date"`
	XPEarned   int       `json:"xpEarned,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Outbox appends events to a JSONL file beside the config path. All
// writes are fire and forget from the caller's perspective; a failed
// append must never block a completion.
type Outbox struct {
	path string
}

// NewOutbox places the outbox file in the same directory as the ledger
// store.
func NewOutbox(configPath string) *Outbox {
	return &Outbox{
		path: filepath.Join(filepath.Dir(configPath), constants.OutboxFileName),
	}
}

// Path returns the outbox file location.
func (o *Outbox) Path() string {
	return o.path
}

// RecordCompletion queues a completion event.
func (o *Outbox) RecordCompletion(c models.HabitCompletion) error {
	return o.append(Event{
		ID:         uuid.NewString(),
		Type:       EventCompletion,
		HabitID:    c.HabitID,
		Date:       c.Date,
		XPEarned:   c.XPEarned,
		RecordedAt: time.Now(),
	})
}

// RecordReversal queues the undo of a completion.
func (o *Outbox) RecordReversal(habitID, date string) error {
	return o.append(Event{
		ID:         uuid.NewString(),
		Type:       EventReversal,
		HabitID:    habitID,
		Date:       date,
		RecordedAt: time.Now(),
	})
}

func (o *Outbox) append(e Event) error {
	if err := os.MkdirAll(filepath.Dir(o.path), 0700); err != nil {
		return fmt.Errorf("failed to create outbox directory: %w", err)
	}

	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open outbox: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode outbox event: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append outbox event: %w", err)
	}
	return nil
}

// Pending returns all queued events in append order. Lines that fail to
// parse are skipped so one bad record cannot wedge the queue.
func (o *Outbox) Pending() ([]Event, error) {
	f, err := os.Open(o.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open outbox: %w", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read outbox: %w", err)
	}
	return events, nil
}

// Clear truncates the queue, for use after a successful upload.
func (o *Outbox) Clear() error {
	err := os.Remove(o.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear outbox: %w", err)
	}
	return nil
}
