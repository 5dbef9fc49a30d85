package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"workhours/internal/model"
	"workhours/internal/repository"
	"workhours/internal/service"
	"workhours/internal/testutil"
)

const testUser = "user-1"

type fixture struct {
	headingRepo  *repository.HeadingRepository
	workHourRepo *repository.WorkHourRepository
	userRepo     *repository.UserRepository
	headings     *service.HeadingService
	workHours    *service.WorkHourService
	summary      *service.SummaryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	headingRepo := repository.NewHeadingRepository(db)
	workHourRepo := repository.NewWorkHourRepository(db)
	return &fixture{
		headingRepo:  headingRepo,
		workHourRepo: workHourRepo,
		userRepo:     repository.NewUserRepository(db),
		headings:     service.NewHeadingService(headingRepo, workHourRepo),
		workHours:    service.NewWorkHourService(workHourRepo, headingRepo, 0.5),
		summary:      service.NewSummaryService(workHourRepo, headingRepo, 0.5),
	}
}

// mustHeading creates a heading or fails the test.
func (f *fixture) mustHeading(t *testing.T, name string) *model.Heading {
	t.Helper()
	heading, err := f.headings.Create(context.Background(), testUser, name)
	require.NoError(t, err)
	return heading
}

// orders returns the user's heading order values in listing order.
func (f *fixture) orders(t *testing.T) []int {
	t.Helper()
	headings, err := f.headings.List(context.Background(), testUser)
	require.NoError(t, err)
	out := make([]int, len(headings))
	for i, h := range headings {
		out[i] = h.Order
	}
	return out
}

// names returns the user's heading names in listing order.
func (f *fixture) names(t *testing.T) []string {
	t.Helper()
	headings, err := f.headings.List(context.Background(), testUser)
	require.NoError(t, err)
	out := make([]string, len(headings))
	for i, h := range headings {
		out[i] = h.Name
	}
	return out
}

// requireDenseOrders asserts the order invariant: exactly {0..n-1} in
// listing order.
func requireDenseOrders(t *testing.T, orders []int) {
	t.Helper()
	for i, o := range orders {
		require.Equal(t, i, o, "orders %v are not dense", orders)
	}
}
