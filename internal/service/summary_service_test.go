package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhours/internal/model"
	"workhours/internal/service"
)

func TestComposeSummary(t *testing.T) {
	f := newFixture(t)
	consulting := f.mustHeading(t, "Consulting")
	writing := f.mustHeading(t, "Writing")
	ctx := context.Background()

	mk := func(headingID, start, end string) {
		in := service.WorkHourInput{
			StartDate: "2024-01-10", EndDate: "2024-01-10",
			StartTime: start, EndTime: end,
			HeadingID: headingID,
		}
		_, err := f.workHours.Create(ctx, testUser, in)
		require.NoError(t, err)
	}
	mk(consulting.ID, "09:00", "12:00") // 3h
	mk(consulting.ID, "13:00", "14:30") // 1h 30m
	mk(writing.ID, "15:00", "16:00")    // 1h

	text, err := f.summary.Compose(ctx, testUser, model.EntryFilter{})
	require.NoError(t, err)
	assert.Contains(t, text, "Consulting: 4h 30m")
	assert.Contains(t, text, "Writing: 1h 0m")
	assert.Contains(t, text, "Total: 5h 30m across 3 entries")
	assert.Contains(t, text, "earnings 165.00")
}

func TestComposeSummary_Empty(t *testing.T) {
	f := newFixture(t)
	text, err := f.summary.Compose(context.Background(), testUser, model.EntryFilter{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)
	assert.Contains(t, text, "Work summary 2024-01-01 to 2024-01-31")
	assert.Contains(t, text, "No work hours recorded.")
}
