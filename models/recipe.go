package models

// Recipe stores ingredients and instructions as free text; Popularity only feeds
// the descending sort behind the popular listing.
type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Ingredients  string `gorm:"type:text;not null" json:"ingredients"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
	Popularity   int    `gorm:"default:0" json:"popularity"`
}
