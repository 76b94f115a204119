package models

import "time"

// Todo is a checklist item with a three-state lifecycle:
// active (is_deleted=false), trashed (is_deleted=true, deleted_at set),
// and gone (row removed by permanent delete or the trash purge job).
// DeletedAt is a plain timestamp on purpose; the trash lifecycle is part
// of the API surface, not GORM's implicit soft-delete.
type Todo struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Text       string     `gorm:"not null" json:"text"`
	Completed  bool       `gorm:"not null;default:false" json:"completed"`
	ExpiryDate *time.Time `json:"expiry_date"`
	IsDeleted  bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt  *time.Time `json:"deleted_at"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
