package models

import (
	"time"
)

// User represents an application account. Passwords are bcrypt hashes and
// never serialized; reset token fields hold the encrypted forgot-password
// token until it is consumed or expires.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Avatar   string `gorm:"not null;default:''" json:"avatar"`
	Bio      string `gorm:"not null;default:''" json:"bio"`

	ResetToken        string     `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	JoinDate    time.Time `gorm:"autoCreateTime" json:"join_date"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}
