// ABOUTME: Tests for WeeklyPlan mutation and the carb range table.
// ABOUTME: Covers defaults, set/copy day, day name resolution, and today check.
package models

import (
	"testing"
	"time"
)

func TestNewWeeklyPlan(t *testing.T) {
	p := NewWeeklyPlan()

	if len(p.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(p.Days))
	}
	for i, d := range p.Days {
		if d.Day != Weekdays[i] {
			t.Errorf("Days[%d].Day = %s, want %s", i, d.Day, Weekdays[i])
		}
		if d.Activity != DayModerate {
			t.Errorf("Days[%d].Activity = %s, want moderate", i, d.Activity)
		}
	}
}

func TestCarbRanges(t *testing.T) {
	tests := []struct {
		activity DayActivity
		want     CarbRange
	}{
		{DayRest, CarbRange{Min: 0, Max: 2.2, Optimal: 1.1}},
		{DayLight, CarbRange{Min: 1.1, Max: 3.3, Optimal: 2.2}},
		{DayModerate, CarbRange{Min: 2.2, Max: 4.4, Optimal: 3.3}},
		{DayHard, CarbRange{Min: 3.3, Max: 5.5, Optimal: 4.4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			if got := tt.activity.Carbs(); got != tt.want {
				t.Errorf("Carbs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetDay(t *testing.T) {
	p := NewWeeklyPlan()

	if err := p.SetDay(1, DayHard); err != nil {
		t.Fatalf("SetDay failed: %v", err)
	}
	if p.Days[1].Activity != DayHard {
		t.Errorf("Days[1].Activity = %s, want hard", p.Days[1].Activity)
	}
	// Other days untouched
	if p.Days[0].Activity != DayModerate {
		t.Errorf("Days[0].Activity = %s, want moderate", p.Days[0].Activity)
	}

	if err := p.SetDay(7, DayRest); err == nil {
		t.Error("SetDay(7) expected out-of-range error, got nil")
	}
	if err := p.SetDay(-1, DayRest); err == nil {
		t.Error("SetDay(-1) expected out-of-range error, got nil")
	}
	if err := p.SetDay(0, "extreme"); err == nil {
		t.Error("SetDay with unknown tier expected error, got nil")
	}
}

func TestCopyDay(t *testing.T) {
	p := NewWeeklyPlan()
	if err := p.SetDay(2, DayHard); err != nil {
		t.Fatalf("SetDay failed: %v", err)
	}

	if err := p.CopyDay(2); err != nil {
		t.Fatalf("CopyDay failed: %v", err)
	}

	for i, d := range p.Days {
		if d.Activity != DayHard {
			t.Errorf("Days[%d].Activity = %s, want hard", i, d.Activity)
		}
		if d.Day != Weekdays[i] {
			t.Errorf("Days[%d].Day = %s, day names must not change", i, d.Day)
		}
	}
}

func TestCopyDayOutOfRange(t *testing.T) {
	p := NewWeeklyPlan()
	if err := p.CopyDay(9); err == nil {
		t.Error("CopyDay(9) expected error, got nil")
	}
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"Monday", 0, false},
		{"monday", 0, false},
		{"mon", 0, false},
		{"tue", 1, false},
		{"Tuesday", 1, false},
		{"sun", 6, false},
		{"saturday", 5, false},
		{"mo", 0, true},
		{"funday", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := DayIndex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("DayIndex(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("DayIndex(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.want {
				t.Errorf("DayIndex(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsToday(t *testing.T) {
	today := time.Now().Weekday().String()

	if !IsToday(today) {
		t.Errorf("IsToday(%q) = false, want true", today)
	}

	for _, day := range Weekdays {
		if day != today && IsToday(day) {
			t.Errorf("IsToday(%q) = true, want false", day)
		}
	}
}
