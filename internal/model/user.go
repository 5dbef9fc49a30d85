package model

import "time"

// User holds the single credential the tracker authenticates against.
// The PIN is stored bcrypt-hashed and never serialized.
type User struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	PinHash   string     `gorm:"column:pin_hash" json:"-"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
