package model

import "time"

// Heading is a user-defined category for work-hour entries. For a given
// user the Order values are always exactly {0, 1, ..., n-1}: new headings
// are appended at max+1 and deletions close the gap they leave.
type Heading struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;index:idx_user_heading_name,unique" json:"userId"`
	Name      string    `gorm:"index:idx_user_heading_name,unique" json:"name"`
	Order     int       `gorm:"column:sort_order" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderAssignment is one element of a bulk reorder request.
type OrderAssignment struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}
