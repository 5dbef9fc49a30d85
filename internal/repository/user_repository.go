package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"workhours/internal/model"
)

// UserRepository manages the single credential record.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// First returns the credential record, or model.ErrNotFound when no user
// has been bootstrapped yet.
func (r *UserRepository) First(ctx context.Context) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrNotFound
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, model.ErrNotFound
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// SavePinHash replaces the stored PIN hash.
func (r *UserRepository) SavePinHash(ctx context.Context, user *model.User, hash string) error {
	user.PinHash = hash
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save pin: %w", err)
	}
	return nil
}

// TouchLastLogin records a successful login time.
func (r *UserRepository) TouchLastLogin(ctx context.Context, user *model.User, at time.Time) error {
	user.LastLogin = &at
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
