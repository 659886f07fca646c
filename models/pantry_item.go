package models

import "time"

// PantryItem is one stocked item. "Low stock" means Quantity strictly below Threshold.
type PantryItem struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Quantity       int        `gorm:"default:0" json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Threshold      int        `gorm:"default:1" json:"threshold"`

	History []InventoryHistory `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// LowStock reports whether the item has fallen below its threshold.
func (p *PantryItem) LowStock() bool {
	return p.Quantity < p.Threshold
}
