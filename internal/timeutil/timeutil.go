package timeutil

import (
	"fmt"
	"log"
	"regexp"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

const minutesPerDay = 24 * 60

// timePattern accepts 24-hour HH:MM with both digits present.
var timePattern = regexp.MustCompile(`^([0-1]\d|2[0-3]):[0-5]\d$`)

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date. Parsing in
// UTC keeps date-only comparisons stable regardless of the host timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ValidTime reports whether s is a well-formed 24-hour HH:MM time.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// ValidateDateRange reports whether both dates parse and start is not after
// end. Time of day plays no part in the comparison.
func ValidateDateRange(startDate, endDate string) bool {
	start, err := ParseDate(startDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return false
	}
	return !start.After(end)
}

// ValidateTimeRange reports whether both times are well-formed and not
// numerically equal. End before start is accepted here: cross-day entries
// legitimately wrap past midnight. Same-day entries additionally need
// end > start, which is the caller's rule, not this function's.
func ValidateTimeRange(startTime, endTime string) bool {
	start, err := toMinutes(startTime)
	if err != nil {
		return false
	}
	end, err := toMinutes(endTime)
	if err != nil {
		return false
	}
	return start != end
}

// DurationMinutes returns the minutes between startTime and endTime,
// wrapping past midnight once when end precedes start. A single HH:MM pair
// cannot express more than 24 hours; longer spans are out of range for
// this representation.
func DurationMinutes(startTime, endTime string) (int, error) {
	start, err := toMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := toMinutes(endTime)
	if err != nil {
		return 0, err
	}
	minutes := end - start
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes, nil
}

// Duration formats the interval between two HH:MM times as "Hh Mm".
func Duration(startTime, endTime string) (string, error) {
	minutes, err := DurationMinutes(startTime, endTime)
	if err != nil {
		return "", err
	}
	return FormatMinutes(minutes), nil
}

// FormatMinutes renders a minute count as "Hh Mm".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// Totals aggregates a set of work-hour intervals.
type Totals struct {
	TotalMinutes int    `json:"totalMinutes"`
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Duration     string `json:"duration"`
	Earnings     string `json:"earnings"`
}

// Interval is the minimal shape AggregateTotals needs from an entry.
type Interval struct {
	StartTime string
	EndTime   string
}

// AggregateTotals sums the wrapped duration of each interval and derives
// earnings at the given per-minute rate, formatted to two decimals.
// Entries with malformed times are skipped with a warning rather than
// failing the whole aggregate. Empty input yields zero totals.
func AggregateTotals(intervals []Interval, ratePerMinute float64) Totals {
	total := 0
	for _, iv := range intervals {
		minutes, err := DurationMinutes(iv.StartTime, iv.EndTime)
		if err != nil {
			log.Printf("[warn] skipping entry with bad times %q-%q: %v", iv.StartTime, iv.EndTime, err)
			continue
		}
		total += minutes
	}
	return Totals{
		TotalMinutes: total,
		Hours:        total / 60,
		Minutes:      total % 60,
		Duration:     FormatMinutes(total),
		Earnings:     fmt.Sprintf("%.2f", float64(total)*ratePerMinute),
	}
}

// FormatDate renders a YYYY-MM-DD date as "Jan 2, 2006", anchored to UTC.
// Malformed input is logged and returned unchanged so display code stays
// resilient to unexpected data.
func FormatDate(dateString string) string {
	date, err := ParseDate(dateString)
	if err != nil {
		log.Printf("[warn] format date %q: %v", dateString, err)
		return dateString
	}
	return date.Format("Jan 2, 2006")
}

// FormatTime converts a 24-hour HH:MM time to 12-hour with an AM/PM
// suffix. Malformed input is logged and returned unchanged.
func FormatTime(timeString string) string {
	minutes, err := toMinutes(timeString)
	if err != nil {
		log.Printf("[warn] format time %q: %v", timeString, err)
		return timeString
	}
	hours := minutes / 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes%60, period)
}

func toMinutes(s string) (int, error) {
	if !timePattern.MatchString(s) {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	var hour, minute int
	fmt.Sscanf(s, "%d:%d", &hour, &minute)
	return hour*60 + minute, nil
}
