package models

import "time"

// Note priority levels. Unknown values sort with medium weight.
const (
	NotePriorityLow    = "Low"
	NotePriorityMedium = "Medium"
	NotePriorityHigh   = "High"
)

// Note is a categorized, taggable note with an optional audio attachment.
// Tags is a comma-separated string, matching the wire format.
type Note struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"not null" json:"title"`
	Content    string `gorm:"type:text;not null;default:''" json:"content"`
	Category   string `gorm:"not null;default:''" json:"category"`
	Tags       string `gorm:"not null;default:''" json:"tags"`
	Priority   string `gorm:"not null;default:'Medium'" json:"priority"`
	IsFavorite bool   `gorm:"not null;default:false" json:"is_favorite"`

	HasAudio      bool    `gorm:"not null;default:false" json:"has_audio"`
	AudioFilename string  `gorm:"not null;default:''" json:"audio_filename"`
	AudioDuration float64 `gorm:"not null;default:0" json:"audio_duration"`
	AudioSize     int64   `gorm:"not null;default:0" json:"audio_size"`

	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
