package models

import "time"

// MealPlan belongs to one user. GeneratedAt is set when the row is created and is
// never written again.
type MealPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	PlanName    string    `gorm:"size:100;not null" json:"plan_name"`
	GeneratedAt time.Time `gorm:"autoCreateTime" json:"generated_at"`
	Summary     string    `gorm:"type:text" json:"summary"`
}
