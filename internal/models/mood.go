package models

import "time"

// Mood is a dated mood log entry. One entry per day per user is the
// convention; it is not enforced by a uniqueness constraint, and the
// streak computation tolerates duplicates.
type Mood struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Mood      string    `gorm:"not null" json:"mood"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
