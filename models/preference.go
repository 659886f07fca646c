package models

// UserPreference is a 1:1 row per account, enforced by the unique index on UserID.
type UserPreference struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	UserID              uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	DietaryRestrictions string `gorm:"size:255" json:"dietary_restrictions"`
	FavoriteCuisines    string `gorm:"size:255" json:"favorite_cuisines"`
}
