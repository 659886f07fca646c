package models

import "time"

// User is an account holder. The password column only ever stores a bcrypt hash.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"size:255" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	MealPlans  []MealPlan         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Preference *UserPreference    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	History    []InventoryHistory `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Posts      []CommunityPost    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Comments   []Comment          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
