package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"workhours/internal/model"
	"workhours/internal/repository"
	"workhours/internal/timeutil"
)

// WorkHourInput carries the fields a client may set on an entry.
type WorkHourInput struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	HeadingID  string `json:"heading"`
	IsComplete bool   `json:"isComplete"`
}

// WorkHourService wraps entry CRUD with range validation and aggregation.
type WorkHourService struct {
	workHourRepo  *repository.WorkHourRepository
	headingRepo   *repository.HeadingRepository
	ratePerMinute float64
}

func NewWorkHourService(workHourRepo *repository.WorkHourRepository, headingRepo *repository.HeadingRepository, ratePerMinute float64) *WorkHourService {
	return &WorkHourService{
		workHourRepo:  workHourRepo,
		headingRepo:   headingRepo,
		ratePerMinute: ratePerMinute,
	}
}

func (s *WorkHourService) Create(ctx context.Context, userID string, input WorkHourInput) (*model.WorkHour, error) {
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	entry := model.WorkHour{
		ID:         uuid.NewString(),
		UserID:     userID,
		HeadingID:  input.HeadingID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		IsComplete: input.IsComplete,
	}
	if err := s.workHourRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WorkHourService) List(ctx context.Context, userID string, filter model.EntryFilter) ([]model.WorkHour, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	return s.workHourRepo.List(ctx, userID, filter)
}

func (s *WorkHourService) Update(ctx context.Context, userID, id string, input WorkHourInput) (*model.WorkHour, error) {
	entry, err := s.workHourRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, userID, input); err != nil {
		return nil, err
	}

	entry.StartDate = input.StartDate
	entry.EndDate = input.EndDate
	entry.StartTime = input.StartTime
	entry.EndTime = input.EndTime
	entry.HeadingID = input.HeadingID
	entry.IsComplete = input.IsComplete
	if err := s.workHourRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetCompletion toggles a single entry's completion flag.
func (s *WorkHourService) SetCompletion(ctx context.Context, userID, id string, isComplete bool) (*model.WorkHour, error) {
	entry, err := s.workHourRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	entry.IsComplete = isComplete
	if err := s.workHourRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WorkHourService) Delete(ctx context.Context, userID, id string) error {
	return s.workHourRepo.Delete(ctx, userID, id)
}

// SetCompletionBatch updates the completion flag of every entry matching
// the filter and returns how many entries were modified.
func (s *WorkHourService) SetCompletionBatch(ctx context.Context, userID string, filter model.EntryFilter, isComplete bool) (int, error) {
	if err := validateFilter(filter); err != nil {
		return 0, err
	}
	return s.workHourRepo.SetCompletion(ctx, userID, filter, isComplete)
}

// Summarize aggregates duration and earnings over the filtered entries.
func (s *WorkHourService) Summarize(ctx context.Context, userID string, filter model.EntryFilter) (timeutil.Totals, error) {
	entries, err := s.List(ctx, userID, filter)
	if err != nil {
		return timeutil.Totals{}, err
	}
	intervals := make([]timeutil.Interval, 0, len(entries))
	for _, e := range entries {
		intervals = append(intervals, timeutil.Interval{StartTime: e.StartTime, EndTime: e.EndTime})
	}
	return timeutil.AggregateTotals(intervals, s.ratePerMinute), nil
}

// validate checks the input before any write happens: well-formed dates in
// order, well-formed non-equal times, same-day entries strictly forward,
// and a heading that exists for this user.
func (s *WorkHourService) validate(ctx context.Context, userID string, input WorkHourInput) error {
	if !timeutil.ValidDate(input.StartDate) {
		return model.NewValidationError("startDate", "%q is not a valid date, use YYYY-MM-DD", input.StartDate)
	}
	if !timeutil.ValidDate(input.EndDate) {
		return model.NewValidationError("endDate", "%q is not a valid date, use YYYY-MM-DD", input.EndDate)
	}
	if !timeutil.ValidateDateRange(input.StartDate, input.EndDate) {
		return model.NewValidationError("endDate", "end date must not be before start date")
	}
	if !timeutil.ValidTime(input.StartTime) {
		return model.NewValidationError("startTime", "%q is not a valid time, use HH:MM", input.StartTime)
	}
	if !timeutil.ValidTime(input.EndTime) {
		return model.NewValidationError("endTime", "%q is not a valid time, use HH:MM", input.EndTime)
	}
	if !timeutil.ValidateTimeRange(input.StartTime, input.EndTime) {
		return model.NewValidationError("endTime", "start and end time must differ")
	}
	if input.StartDate == input.EndDate && input.EndTime < input.StartTime {
		return model.NewValidationError("endTime", "end time must be after start time on a same-day entry")
	}

	if input.HeadingID == "" {
		return model.NewValidationError("heading", "a heading is required")
	}
	if _, err := s.headingRepo.FindByID(ctx, userID, input.HeadingID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewValidationError("heading", "heading %s does not exist", input.HeadingID)
		}
		return err
	}
	return nil
}

func validateFilter(filter model.EntryFilter) error {
	if filter.From != "" && !timeutil.ValidDate(filter.From) {
		return model.NewValidationError("from", "%q is not a valid date, use YYYY-MM-DD", filter.From)
	}
	if filter.To != "" && !timeutil.ValidDate(filter.To) {
		return model.NewValidationError("to", "%q is not a valid date, use YYYY-MM-DD", filter.To)
	}
	if filter.From != "" && filter.To != "" && !timeutil.ValidateDateRange(filter.From, filter.To) {
		return model.NewValidationError("to", "end date must not be before start date")
	}
	switch filter.Status {
	case "", model.StatusAll, model.StatusComplete, model.StatusPending:
	default:
		return model.NewValidationError("status", "status must be all, complete or pending")
	}
	return nil
}
