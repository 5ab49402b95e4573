package models

import "time"

// UserStatus represents the moderation state of a bot user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusBlocked  UserStatus = "blocked"
	UserStatusInactive UserStatus = "inactive"
)

// Valid reports whether s is a known user status.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusBlocked, UserStatusInactive:
		return true
	}
	return false
}

// BotUser represents a Telegram user who has written to the bot
type BotUser struct {
	Base
	TelegramID  int64      `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username    string     `gorm:"not null;default:''" json:"username"`
	FirstName   string     `gorm:"not null;default:''" json:"first_name"`
	LastName    string     `gorm:"not null;default:''" json:"last_name"`
	SearchCount int64      `gorm:"not null;default:0" json:"search_count"`
	Status      UserStatus `gorm:"not null;default:'active'" json:"status"`
	LastActive  time.Time  `gorm:"index" json:"last_active"`
}

// TelegramIdentity is the sender information carried by an inbound update
type TelegramIdentity struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
}
