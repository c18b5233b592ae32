package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wirdhq/wird/internal/models"
)

func newTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	return NewOutbox(filepath.Join(t.TempDir(), "wird.db"))
}

func TestOutboxAppendOrder(t *testing.T) {
	o := newTestOutbox(t)

	c := models.HabitCompletion{
		HabitID:     "journey-1-dua-2",
		Date:        "2025-06-15",
		CompletedAt: time.Now(),
		XPEarned:    20,
	}
	if err := o.RecordCompletion(c); err != nil {
		t.Fatalf("failed to record completion: %v", err)
	}
	if err := o.RecordReversal(c.HabitID, c.Date); err != nil {
		t.Fatalf("failed to record reversal: %v", err)
	}

	events, err := o.Pending()
	if err != nil {
		t.Fatalf("failed to read pending events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != EventCompletion || events[1].Type != EventReversal {
		t.Errorf("events out of order: %v, %v", events[0].Type, events[1].Type)
	}
	if events[0].XPEarned != 20 {
		t.Errorf("expected completion XP 20, got %d", events[0].XPEarned)
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Error("events must carry distinct non-empty ids")
	}
}

func TestOutboxPendingEmptyWhenMissing(t *testing.T) {
	o := newTestOutbox(t)

	events, err := o.Pending()
	if err != nil {
		t.Fatalf("missing outbox should not be an error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestOutboxSkipsCorruptLines(t *testing.T) {
	o := newTestOutbox(t)

	if err := o.RecordReversal("custom-7", "2025-06-15"); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}
	f, err := os.OpenFile(o.Path(), os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		t.Fatalf("failed to open outbox: %v", err)
	}
	if _, err := f.WriteString("{not json\n"); err != nil {
		t.Fatalf("failed to corrupt outbox: %v", err)
	}
	f.Close()
	if err := o.RecordReversal("custom-7", "2025-06-16"); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}

	events, err := o.Pending()
	if err != nil {
		t.Fatalf("failed to read pending events: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("expected corrupt line to be skipped, got %d events", len(events))
	}
}

func TestOutboxClear(t *testing.T) {
	o := newTestOutbox(t)

	if err := o.Clear(); err != nil {
		t.Fatalf("clearing a missing outbox should succeed: %v", err)
	}

	if err := o.RecordReversal("custom-7", "2025-06-15"); err != nil {
		t.Fatalf("failed to record event: %v", err)
	}
	if err := o.Clear(); err != nil {
		t.Fatalf("failed to clear outbox: %v", err)
	}
	events, err := o.Pending()
	if err != nil {
		t.Fatalf("failed to read pending events: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected empty queue after clear, got %d events", len(events))
	}
}
