package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	day := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	if got := DayKey(day); got != "2025-06-15" {
		t.Errorf("expected 2025-06-15, got %s", got)
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2025-06-15", -30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-05-16" {
		t.Errorf("expected 2025-05-16, got %s", got)
	}

	got, err = AddDays("2025-12-31", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2026-01-01" {
		t.Errorf("expected year rollover to 2026-01-01, got %s", got)
	}

	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2025-06-15", "2024-02-29"}
	for _, d := range valid {
		if !ValidDate(d) {
			t.Errorf("expected %s to be valid", d)
		}
	}

	invalid := []string{"", "2025-13-01", "2025-02-30", "15-06-2025", "today"}
	for _, d := range invalid {
		if ValidDate(d) {
			t.Errorf("expected %s to be invalid", d)
		}
	}
}

func TestExpandPath(t *testing.T) {
	if got := ExpandPath("/tmp/wird.db"); got != "/tmp/wird.db" {
		t.Errorf("absolute path should pass through, got %s", got)
	}
	if got := ExpandPath("postgres://user@host/wird"); got != "postgres://user@host/wird" {
		t.Errorf("connection string should pass through, got %s", got)
	}
	if got := ExpandPath("~/wird.db"); got == "~/wird.db" {
		t.Error("tilde path was not expanded")
	}
}
