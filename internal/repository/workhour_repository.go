package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"workhours/internal/model"
)

// WorkHourRepository handles CRUD for work-hour entries.
type WorkHourRepository struct {
	db *gorm.DB
}

func NewWorkHourRepository(db *gorm.DB) *WorkHourRepository {
	return &WorkHourRepository{db: db}
}

func (r *WorkHourRepository) Create(ctx context.Context, entry *model.WorkHour) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create work hour: %w", err)
	}
	return nil
}

func (r *WorkHourRepository) FindByID(ctx context.Context, userID, id string) (*model.WorkHour, error) {
	var entry model.WorkHour
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&entry).Error
	switch {
	case err == nil:
		return &entry, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrNotFound
	default:
		return nil, fmt.Errorf("find work hour: %w", err)
	}
}

// List returns the user's entries matching the filter, newest start date
// first.
func (r *WorkHourRepository) List(ctx context.Context, userID string, filter model.EntryFilter) ([]model.WorkHour, error) {
	var entries []model.WorkHour
	if err := r.filtered(ctx, userID, filter).
		Order("start_date DESC, created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list work hours: %w", err)
	}
	return entries, nil
}

func (r *WorkHourRepository) Save(ctx context.Context, entry *model.WorkHour) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save work hour: %w", err)
	}
	return nil
}

func (r *WorkHourRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).
		Delete(&model.WorkHour{})
	if res.Error != nil {
		return fmt.Errorf("delete work hour: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// HeadingInUse reports whether any entry of the user references the heading.
func (r *WorkHourRepository) HeadingInUse(ctx context.Context, userID, headingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.WorkHour{}).
		Where("user_id = ? AND heading_id = ?", userID, headingID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count heading usage: %w", err)
	}
	return count > 0, nil
}

// SetCompletion updates IsComplete on every entry matching the filter and
// returns the number of rows modified.
func (r *WorkHourRepository) SetCompletion(ctx context.Context, userID string, filter model.EntryFilter, isComplete bool) (int, error) {
	res := r.filtered(ctx, userID, filter).Model(&model.WorkHour{}).
		Update("is_complete", isComplete)
	if res.Error != nil {
		return 0, fmt.Errorf("batch status update: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}

func (r *WorkHourRepository) filtered(ctx context.Context, userID string, filter model.EntryFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.From != "" {
		q = q.Where("start_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("end_date <= ?", filter.To)
	}
	if filter.HeadingID != "" {
		q = q.Where("heading_id = ?", filter.HeadingID)
	}
	switch filter.Status {
	case model.StatusComplete:
		q = q.Where("is_complete = ?", true)
	case model.StatusPending:
		q = q.Where("is_complete = ?", false)
	}
	return q
}
