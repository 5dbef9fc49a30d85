package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"workhours/internal/model"
	"workhours/internal/repository"
	"workhours/internal/timeutil"
)

// SummaryService builds human-readable work summaries for the scheduled
// report job and the report command.
type SummaryService struct {
	workHourRepo  *repository.WorkHourRepository
	headingRepo   *repository.HeadingRepository
	ratePerMinute float64
}

func NewSummaryService(workHourRepo *repository.WorkHourRepository, headingRepo *repository.HeadingRepository, ratePerMinute float64) *SummaryService {
	return &SummaryService{
		workHourRepo:  workHourRepo,
		headingRepo:   headingRepo,
		ratePerMinute: ratePerMinute,
	}
}

// Compose renders per-heading totals plus a grand total for the user's
// entries matching the filter. Entries whose heading no longer resolves
// are grouped under "(unknown heading)".
func (s *SummaryService) Compose(ctx context.Context, userID string, filter model.EntryFilter) (string, error) {
	entries, err := s.workHourRepo.List(ctx, userID, filter)
	if err != nil {
		return "", err
	}

	headings, err := s.headingRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	names := make(map[string]string, len(headings))
	for _, h := range headings {
		names[h.ID] = h.Name
	}

	perHeading := make(map[string]int)
	intervals := make([]timeutil.Interval, 0, len(entries))
	for _, e := range entries {
		name, ok := names[e.HeadingID]
		if !ok {
			name = "(unknown heading)"
		}
		minutes, err := timeutil.DurationMinutes(e.StartTime, e.EndTime)
		if err == nil {
			perHeading[name] += minutes
		}
		intervals = append(intervals, timeutil.Interval{StartTime: e.StartTime, EndTime: e.EndTime})
	}
	totals := timeutil.AggregateTotals(intervals, s.ratePerMinute)

	var b strings.Builder
	b.WriteString(summaryTitle(filter))
	if len(entries) == 0 {
		b.WriteString("No work hours recorded.\n")
		return b.String(), nil
	}

	lines := make([]string, 0, len(perHeading))
	for name, minutes := range perHeading {
		lines = append(lines, fmt.Sprintf("  %s: %s", name, timeutil.FormatMinutes(minutes)))
	}
	sort.Strings(lines)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total: %s across %d entries, earnings %s\n", totals.Duration, len(entries), totals.Earnings)
	return b.String(), nil
}

func summaryTitle(filter model.EntryFilter) string {
	switch {
	case filter.From != "" && filter.To != "":
		return fmt.Sprintf("Work summary %s to %s:\n", filter.From, filter.To)
	case filter.From != "":
		return fmt.Sprintf("Work summary from %s:\n", filter.From)
	case filter.To != "":
		return fmt.Sprintf("Work summary through %s:\n", filter.To)
	default:
		return "Work summary:\n"
	}
}
