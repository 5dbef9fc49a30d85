package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"workhours/internal/model"
)

// HeadingRepository manages work-hour headings and their order bookkeeping.
type HeadingRepository struct {
	db *gorm.DB
}

func NewHeadingRepository(db *gorm.DB) *HeadingRepository {
	return &HeadingRepository{db: db}
}

func (r *HeadingRepository) Create(ctx context.Context, heading *model.Heading) error {
	if err := r.db.WithContext(ctx).Create(heading).Error; err != nil {
		return fmt.Errorf("create heading: %w", err)
	}
	return nil
}

// ListByUser returns the user's headings ascending by order.
func (r *HeadingRepository) ListByUser(ctx context.Context, userID string) ([]model.Heading, error) {
	var headings []model.Heading
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("sort_order ASC").Find(&headings).Error; err != nil {
		return nil, fmt.Errorf("list headings: %w", err)
	}
	return headings, nil
}

func (r *HeadingRepository) FindByID(ctx context.Context, userID, id string) (*model.Heading, error) {
	var heading model.Heading
	err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&heading).Error
	switch {
	case err == nil:
		return &heading, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrNotFound
	default:
		return nil, fmt.Errorf("find heading: %w", err)
	}
}

// NextOrder returns max(order)+1 for the user, or 0 when the user has no
// headings yet.
func (r *HeadingRepository) NextOrder(ctx context.Context, userID string) (int, error) {
	var last model.Heading
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("sort_order DESC").First(&last).Error
	switch {
	case err == nil:
		return last.Order + 1, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return 0, nil
	default:
		return 0, fmt.Errorf("max order: %w", err)
	}
}

// NameExists reports whether the user already has a heading with exactly
// this name.
func (r *HeadingRepository) NameExists(ctx context.Context, userID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Heading{}).
		Where("user_id = ? AND name = ?", userID, name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count heading name: %w", err)
	}
	return count > 0, nil
}

// Rename updates the heading's name.
func (r *HeadingRepository) Rename(ctx context.Context, heading *model.Heading, name string) error {
	heading.Name = name
	if err := r.db.WithContext(ctx).Save(heading).Error; err != nil {
		return fmt.Errorf("rename heading: %w", err)
	}
	return nil
}

// DeleteAndRenumber removes the heading and decrements the order of every
// remaining heading of the same user whose order exceeded it, keeping the
// per-user sequence dense. Both steps run in one transaction so a partial
// delete can never leave a gap behind.
func (r *HeadingRepository) DeleteAndRenumber(ctx context.Context, heading *model.Heading) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", heading.UserID, heading.ID).
			Delete(&model.Heading{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return tx.Model(&model.Heading{}).
			Where("user_id = ? AND sort_order > ?", heading.UserID, heading.Order).
			UpdateColumn("sort_order", gorm.Expr("sort_order - 1")).Error
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete heading: %w", err)
	}
	return nil
}

// UpdateOrders applies each assignment as an independent owner-scoped
// update and returns how many rows were modified. Assignments whose id
// does not exist (or belongs to another user) simply match zero rows;
// the caller compares the count against the request size.
func (r *HeadingRepository) UpdateOrders(ctx context.Context, userID string, assignments []model.OrderAssignment) (int, error) {
	modified := 0
	db := r.db.WithContext(ctx)
	for _, a := range assignments {
		res := db.Model(&model.Heading{}).
			Where("user_id = ? AND id = ?", userID, a.ID).
			UpdateColumn("sort_order", a.Order)
		if res.Error != nil {
			return modified, fmt.Errorf("update order for %s: %w", a.ID, res.Error)
		}
		modified += int(res.RowsAffected)
	}
	return modified, nil
}
