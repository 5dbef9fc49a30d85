package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"workhours/internal/model"
	"workhours/internal/repository"
)

const (
	minHeadingName = 2
	maxHeadingName = 50
)

// MoveDirection names the two adjacent-swap directions.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// HeadingService owns the per-user heading ordering: appends get the next
// order value, deletions renumber what follows, and bulk reorders are
// applied best-effort with the outcome reported precisely.
type HeadingService struct {
	headingRepo  *repository.HeadingRepository
	workHourRepo *repository.WorkHourRepository
}

func NewHeadingService(headingRepo *repository.HeadingRepository, workHourRepo *repository.WorkHourRepository) *HeadingService {
	return &HeadingService{headingRepo: headingRepo, workHourRepo: workHourRepo}
}

// Create appends a heading at order max+1 (0 for the user's first).
func (s *HeadingService) Create(ctx context.Context, userID, name string) (*model.Heading, error) {
	name, err := s.validName(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	order, err := s.headingRepo.NextOrder(ctx, userID)
	if err != nil {
		return nil, err
	}

	heading := model.Heading{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
		Order:  order,
	}
	if err := s.headingRepo.Create(ctx, &heading); err != nil {
		return nil, err
	}
	return &heading, nil
}

// List returns the user's headings ascending by order.
func (s *HeadingService) List(ctx context.Context, userID string) ([]model.Heading, error) {
	return s.headingRepo.ListByUser(ctx, userID)
}

// Rename changes a heading's name, keeping its order.
func (s *HeadingService) Rename(ctx context.Context, userID, id, name string) (*model.Heading, error) {
	heading, err := s.headingRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if heading.Name == strings.TrimSpace(name) {
		return heading, nil
	}

	name, err = s.validName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if err := s.headingRepo.Rename(ctx, heading, name); err != nil {
		return nil, err
	}
	return heading, nil
}

// Delete removes a heading unless work-hour entries still reference it.
// The delete and the renumbering of greater orders happen in a single
// transaction, so a successful call always leaves the user's order values
// dense; a failed call leaves everything untouched.
func (s *HeadingService) Delete(ctx context.Context, userID, id string) error {
	heading, err := s.headingRepo.FindByID(ctx, userID, id)
	if err != nil {
		return err
	}

	inUse, err := s.workHourRepo.HeadingInUse(ctx, userID, id)
	if err != nil {
		return err
	}
	if inUse {
		return &model.InUseError{HeadingID: id}
	}

	return s.headingRepo.DeleteAndRenumber(ctx, heading)
}

// Reorder applies the given order assignments as independent updates.
// Assignments are validated up front; application is best-effort, matching
// the underlying bulk write: if some ids are unknown or belong to another
// user, the valid ones are still applied and a PartialReorderError reports
// the discrepancy instead of rolling them back.
func (s *HeadingService) Reorder(ctx context.Context, userID string, assignments []model.OrderAssignment) error {
	if len(assignments) == 0 {
		return model.NewValidationError("orders", "at least one order assignment is required")
	}
	for _, a := range assignments {
		if strings.TrimSpace(a.ID) == "" {
			return model.NewValidationError("orders", "each assignment needs a heading id")
		}
		if a.Order < 0 {
			return model.NewValidationError("orders", "order must be a non-negative number, got %d", a.Order)
		}
	}

	modified, err := s.headingRepo.UpdateOrders(ctx, userID, assignments)
	if err != nil {
		return err
	}
	if modified != len(assignments) {
		return &model.PartialReorderError{Requested: len(assignments), Modified: modified}
	}
	return nil
}

// Move swaps the heading's order with its immediate neighbor in sort
// order. Moving the first heading up or the last down is a no-op.
func (s *HeadingService) Move(ctx context.Context, userID, id string, direction MoveDirection) error {
	if direction != MoveUp && direction != MoveDown {
		return model.NewValidationError("direction", "direction must be %q or %q", MoveUp, MoveDown)
	}

	headings, err := s.headingRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	idx := -1
	for i, h := range headings {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrNotFound
	}

	neighbor := idx - 1
	if direction == MoveDown {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(headings) {
		return nil
	}

	return s.Reorder(ctx, userID, []model.OrderAssignment{
		{ID: headings[idx].ID, Order: headings[neighbor].Order},
		{ID: headings[neighbor].ID, Order: headings[idx].Order},
	})
}

func (s *HeadingService) validName(ctx context.Context, userID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) < minHeadingName {
		return "", model.NewValidationError("name", "heading name must be at least %d characters", minHeadingName)
	}
	if len(name) > maxHeadingName {
		return "", model.NewValidationError("name", "heading name cannot exceed %d characters", maxHeadingName)
	}

	exists, err := s.headingRepo.NameExists(ctx, userID, name)
	if err != nil {
		return "", err
	}
	if exists {
		return "", &model.DuplicateNameError{Name: name}
	}
	return name, nil
}
