package timeutil_test

import (
	"testing"

	"workhours/internal/timeutil"
)

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       bool
	}{
		{"2024-01-10", "2024-01-10", true},
		{"2024-01-10", "2024-01-11", true},
		{"2024-01-11", "2024-01-10", false},
		{"bad-date", "2024-01-10", false},
		{"2024-01-10", "bad-date", false},
		{"2024-13-01", "2024-12-01", false},
		{"2023-12-31", "2024-01-01", true},
	}
	for _, tt := range tests {
		got := timeutil.ValidateDateRange(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("ValidateDateRange(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestValidateTimeRange(t *testing.T) {
	tests := []struct {
		start, end string
		want       bool
	}{
		{"09:00", "17:30", true},
		{"23:00", "01:00", true}, // overnight wrap is a valid range
		{"10:00", "10:00", false},
		{"25:00", "10:00", false},
		{"10:60", "11:00", false},
		{"9:00", "10:00", false}, // hour must be two digits
		{"", "10:00", false},
	}
	for _, tt := range tests {
		got := timeutil.ValidateTimeRange(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("ValidateTimeRange(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"09:00", "17:30", "8h 30m"},
		{"23:00", "01:00", "2h 0m"},
		{"00:00", "23:59", "23h 59m"},
		{"12:30", "12:45", "0h 15m"},
		{"13:00", "12:59", "23h 59m"},
	}
	for _, tt := range tests {
		got, err := timeutil.Duration(tt.start, tt.end)
		if err != nil {
			t.Fatalf("Duration(%q, %q): %v", tt.start, tt.end, err)
		}
		if got != tt.want {
			t.Errorf("Duration(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestDurationMalformed(t *testing.T) {
	if _, err := timeutil.Duration("25:00", "10:00"); err == nil {
		t.Error("Duration with malformed start should fail")
	}
	if _, err := timeutil.Duration("10:00", "10:0"); err == nil {
		t.Error("Duration with malformed end should fail")
	}
}

func TestAggregateTotals(t *testing.T) {
	intervals := []timeutil.Interval{
		{StartTime: "09:00", EndTime: "17:00"}, // 480
		{StartTime: "23:00", EndTime: "01:30"}, // 150, wraps
		{StartTime: "10:00", EndTime: "10:45"}, // 45
	}
	got := timeutil.AggregateTotals(intervals, 0.5)
	if got.TotalMinutes != 675 {
		t.Errorf("TotalMinutes = %d, want 675", got.TotalMinutes)
	}
	if got.Hours != 11 || got.Minutes != 15 {
		t.Errorf("Hours/Minutes = %d/%d, want 11/15", got.Hours, got.Minutes)
	}
	if got.Duration != "11h 15m" {
		t.Errorf("Duration = %q, want %q", got.Duration, "11h 15m")
	}
	if got.Earnings != "337.50" {
		t.Errorf("Earnings = %q, want %q", got.Earnings, "337.50")
	}
}

func TestAggregateTotalsEmpty(t *testing.T) {
	got := timeutil.AggregateTotals(nil, 0.5)
	if got.TotalMinutes != 0 {
		t.Errorf("TotalMinutes = %d, want 0", got.TotalMinutes)
	}
	if got.Duration != "0h 0m" {
		t.Errorf("Duration = %q, want %q", got.Duration, "0h 0m")
	}
	if got.Earnings != "0.00" {
		t.Errorf("Earnings = %q, want %q", got.Earnings, "0.00")
	}
}

func TestAggregateTotalsSkipsMalformed(t *testing.T) {
	intervals := []timeutil.Interval{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "bad", EndTime: "10:00"},
	}
	got := timeutil.AggregateTotals(intervals, 1)
	if got.TotalMinutes != 60 {
		t.Errorf("TotalMinutes = %d, want 60", got.TotalMinutes)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-10", "Jan 10, 2024"},
		{"2024-12-01", "Dec 1, 2024"},
		{"not-a-date", "not-a-date"}, // returned unchanged
	}
	for _, tt := range tests {
		if got := timeutil.FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"00:05", "12:05 AM"},
		{"09:30", "9:30 AM"},
		{"12:00", "12:00 PM"},
		{"17:05", "5:05 PM"},
		{"23:59", "11:59 PM"},
		{"24:00", "24:00"}, // returned unchanged
	}
	for _, tt := range tests {
		if got := timeutil.FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
