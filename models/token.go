package models

import "time"

// AuthToken is the opaque bearer credential for an account. The unique index on
// UserID keeps it to at most one live token per account; login replaces the row,
// logout deletes it.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Key       string    `gorm:"size:64;uniqueIndex;not null" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
