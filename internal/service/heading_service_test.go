package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhours/internal/model"
	"workhours/internal/service"
)

func TestCreateHeading_AssignsNextOrder(t *testing.T) {
	f := newFixture(t)

	first := f.mustHeading(t, "Consulting")
	assert.Equal(t, 0, first.Order)

	second := f.mustHeading(t, "Writing")
	assert.Equal(t, 1, second.Order)

	third := f.mustHeading(t, "Review")
	assert.Equal(t, 2, third.Order)

	requireDenseOrders(t, f.orders(t))
}

func TestCreateHeading_TrimsName(t *testing.T) {
	f := newFixture(t)
	heading := f.mustHeading(t, "  Consulting  ")
	assert.Equal(t, "Consulting", heading.Name)
}

func TestCreateHeading_NameLengthBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.headings.Create(ctx, testUser, " x ")
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	_, err = f.headings.Create(ctx, testUser, strings.Repeat("a", 51))
	require.Error(t, err)
	assert.True(t, model.IsValidation(err))

	_, err = f.headings.Create(ctx, testUser, strings.Repeat("a", 50))
	assert.NoError(t, err)
}

func TestCreateHeading_DuplicateName(t *testing.T) {
	f := newFixture(t)
	f.mustHeading(t, "Consulting")

	_, err := f.headings.Create(context.Background(), testUser, "Consulting")
	require.Error(t, err)
	assert.True(t, model.IsDuplicateName(err))

	// Case differs, so it is a distinct name.
	_, err = f.headings.Create(context.Background(), testUser, "consulting")
	assert.NoError(t, err)
}

func TestCreateHeading_OrdersAreScopedPerUser(t *testing.T) {
	f := newFixture(t)
	f.mustHeading(t, "Consulting")
	f.mustHeading(t, "Writing")

	other, err := f.headings.Create(context.Background(), "user-2", "Consulting")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Order, "each user starts at order 0")
}

func TestRenameHeading(t *testing.T) {
	f := newFixture(t)
	heading := f.mustHeading(t, "Consulting")
	f.mustHeading(t, "Writing")

	renamed, err := f.headings.Rename(context.Background(), testUser, heading.ID, "Advisory")
	require.NoError(t, err)
	assert.Equal(t, "Advisory", renamed.Name)
	assert.Equal(t, heading.Order, renamed.Order, "rename keeps the order")

	_, err = f.headings.Rename(context.Background(), testUser, heading.ID, "Writing")
	require.Error(t, err)
	assert.True(t, model.IsDuplicateName(err))

	_, err = f.headings.Rename(context.Background(), testUser, "missing", "Anything")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteHeading_RenumbersRemaining(t *testing.T) {
	f := newFixture(t)
	f.mustHeading(t, "Consulting")
	middle := f.mustHeading(t, "Writing")
	f.mustHeading(t, "Review")
	f.mustHeading(t, "Support")

	require.NoError(t, f.headings.Delete(context.Background(), testUser, middle.ID))

	assert.Equal(t, []string{"Consulting", "Review", "Support"}, f.names(t))
	requireDenseOrders(t, f.orders(t))
}

func TestDeleteHeading_InUse(t *testing.T) {
	f := newFixture(t)
	used := f.mustHeading(t, "Consulting")
	f.mustHeading(t, "Writing")

	_, err := f.workHours.Create(context.Background(), testUser, service.WorkHourInput{
		StartDate: "2024-01-10", EndDate: "2024-01-10",
		StartTime: "09:00", EndTime: "17:00",
		HeadingID: used.ID,
	})
	require.NoError(t, err)

	err = f.headings.Delete(context.Background(), testUser, used.ID)
	require.Error(t, err)
	assert.True(t, model.IsInUse(err))

	// Both the heading and the order sequence are untouched.
	assert.Equal(t, []string{"Consulting", "Writing"}, f.names(t))
	requireDenseOrders(t, f.orders(t))
}

func TestDeleteHeading_NotFound(t *testing.T) {
	f := newFixture(t)
	f.mustHeading(t, "Consulting")
	err := f.headings.Delete(context.Background(), testUser, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReorderHeadings(t *testing.T) {
	f := newFixture(t)
	a := f.mustHeading(t, "Consulting")
	b := f.mustHeading(t, "Writing")
	c := f.mustHeading(t, "Review")

	err := f.headings.Reorder(context.Background(), testUser, []model.OrderAssignment{
		{ID: a.ID, Order: 2},
		{ID: b.ID, Order: 0},
		{ID: c.ID, Order: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Writing", "Review", "Consulting"}, f.names(t))
	requireDenseOrders(t, f.orders(t))
}

func TestReorderHeadings_Validation(t *testing.T) {
	f := newFixture(t)
	a := f.mustHeading(t, "Consulting")
	ctx := context.Background()

	err := f.headings.Reorder(ctx, testUser, nil)
	assert.True(t, model.IsValidation(err))

	err = f.headings.Reorder(ctx, testUser, []model.OrderAssignment{{ID: "", Order: 0}})
	assert.True(t, model.IsValidation(err))

	err = f.headings.Reorder(ctx, testUser, []model.OrderAssignment{{ID: a.ID, Order: -1}})
	assert.True(t, model.IsValidation(err))
}

func TestReorderHeadings_PartialApplication(t *testing.T) {
	f := newFixture(t)
	a := f.mustHeading(t, "Consulting")
	b := f.mustHeading(t, "Writing")

	// Two valid assignments plus one unknown id: the valid ones are
	// applied, the mismatch is surfaced, nothing is rolled back.
	err := f.headings.Reorder(context.Background(), testUser, []model.OrderAssignment{
		{ID: a.ID, Order: 1},
		{ID: b.ID, Order: 0},
		{ID: "missing", Order: 2},
	})
	require.Error(t, err)
	require.True(t, model.IsPartialReorder(err))

	var pe *model.PartialReorderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Requested)
	assert.Equal(t, 2, pe.Modified)

	assert.Equal(t, []string{"Writing", "Consulting"}, f.names(t))
}

func TestReorderHeadings_ForeignIDNotModified(t *testing.T) {
	f := newFixture(t)
	mine := f.mustHeading(t, "Consulting")
	theirs, err := f.headings.Create(context.Background(), "user-2", "Writing")
	require.NoError(t, err)

	err = f.headings.Reorder(context.Background(), testUser, []model.OrderAssignment{
		{ID: mine.ID, Order: 0},
		{ID: theirs.ID, Order: 5},
	})
	require.True(t, model.IsPartialReorder(err))

	others, err := f.headings.List(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, 0, others[0].Order, "another user's heading must not move")
}

func TestMoveHeading(t *testing.T) {
	f := newFixture(t)
	f.mustHeading(t, "Consulting")
	b := f.mustHeading(t, "Writing")
	f.mustHeading(t, "Review")
	ctx := context.Background()

	require.NoError(t, f.headings.Move(ctx, testUser, b.ID, service.MoveUp))
	assert.Equal(t, []string{"Writing", "Consulting", "Review"}, f.names(t))
	requireDenseOrders(t, f.orders(t))

	require.NoError(t, f.headings.Move(ctx, testUser, b.ID, service.MoveDown))
	assert.Equal(t, []string{"Consulting", "Writing", "Review"}, f.names(t))
}

func TestMoveHeading_Boundaries(t *testing.T) {
	f := newFixture(t)
	first := f.mustHeading(t, "Consulting")
	f.mustHeading(t, "Writing")
	last := f.mustHeading(t, "Review")
	ctx := context.Background()

	require.NoError(t, f.headings.Move(ctx, testUser, first.ID, service.MoveUp), "first moving up is a no-op")
	require.NoError(t, f.headings.Move(ctx, testUser, last.ID, service.MoveDown), "last moving down is a no-op")
	assert.Equal(t, []string{"Consulting", "Writing", "Review"}, f.names(t))

	err := f.headings.Move(ctx, testUser, first.ID, "sideways")
	assert.True(t, model.IsValidation(err))

	err = f.headings.Move(ctx, testUser, "missing", service.MoveUp)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// The dense-order invariant holds across an arbitrary mix of appends,
// deletes and moves that complete successfully.
func TestHeadingOrderInvariant_Sequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.mustHeading(t, "A heading")
	b := f.mustHeading(t, "B heading")
	c := f.mustHeading(t, "C heading")
	requireDenseOrders(t, f.orders(t))

	require.NoError(t, f.headings.Delete(ctx, testUser, a.ID))
	requireDenseOrders(t, f.orders(t))

	d := f.mustHeading(t, "D heading")
	requireDenseOrders(t, f.orders(t))

	require.NoError(t, f.headings.Move(ctx, testUser, d.ID, service.MoveUp))
	requireDenseOrders(t, f.orders(t))

	require.NoError(t, f.headings.Reorder(ctx, testUser, []model.OrderAssignment{
		{ID: b.ID, Order: 2}, {ID: c.ID, Order: 1}, {ID: d.ID, Order: 0},
	}))
	requireDenseOrders(t, f.orders(t))

	require.NoError(t, f.headings.Delete(ctx, testUser, d.ID))
	requireDenseOrders(t, f.orders(t))
}
