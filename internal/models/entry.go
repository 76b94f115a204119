package models

import "time"

// Entry is a diary entry. Content is free text and may contain the
// markdown-like list syntax understood by the preview formatter.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null;default:''" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
