package ui

import (
	"testing"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "🌱 Hey there!"},
		{"Sam", "🌱 Hey Sam!"},
	}

	for _, tt := range tests {
		got := Greet(tt.name)
		if got != tt.expected {
			t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestDays(t *testing.T) {
	if got := Days(1); got != "1 day" {
		t.Errorf("Days(1) = %q", got)
	}
	if got := Days(0); got != "0 days" {
		t.Errorf("Days(0) = %q", got)
	}
	if got := Days(12); got != "12 days" {
		t.Errorf("Days(12) = %q", got)
	}
}

func TestIconConstants(t *testing.T) {
	icons := []string{
		IconHabit, IconFire, IconCalendar, IconDone,
		IconWarn, IconError, IconOk, IconArrow, IconDot,
	}
	for i, icon := range icons {
		if icon == "" {
			t.Errorf("Icon at index %d is empty", i)
		}
	}
}
