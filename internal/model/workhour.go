package model

import "time"

// WorkHour is a single tracked interval. Dates are stored as YYYY-MM-DD
// and times as HH:MM strings; an end time earlier than the start time on
// the same date pair means the interval wraps past midnight once.
type WorkHour struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;index:idx_user_start_date" json:"userId"`
	HeadingID  string    `gorm:"index" json:"heading"`
	StartDate  string    `gorm:"index:idx_user_start_date" json:"startDate"`
	EndDate    string    `json:"endDate"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	IsComplete bool      `gorm:"default:false" json:"isComplete"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EntryStatus filters work-hour listings by completion state.
type EntryStatus string

const (
	StatusAll      EntryStatus = "all"
	StatusComplete EntryStatus = "complete"
	StatusPending  EntryStatus = "pending"
)

// EntryFilter narrows work-hour queries. Zero values mean "no constraint".
// From and To compare against StartDate and EndDate respectively, both
// inclusive; date strings compare correctly as plain strings.
type EntryFilter struct {
	From      string
	To        string
	HeadingID string
	Status    EntryStatus
}
