package models

import "time"

// Task is a deadline-bearing item. Lifecycle: created, toggled complete,
// hard-deleted.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null;default:''" json:"description"`
	Deadline    *time.Time `json:"deadline"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
}
