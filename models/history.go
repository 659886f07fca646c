package models

import "time"

// InventoryHistory is an append-only log row: created once, never updated.
// Action is a free-text label such as "added", "removed" or "used".
type InventoryHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ItemID    uint      `gorm:"not null;index" json:"item_id"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
