package controllers

import (
	"errors"
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PreferenceInput struct {
	DietaryRestrictions string `json:"dietary_restrictions" binding:"max=255"`
	FavoriteCuisines    string `json:"favorite_cuisines" binding:"max=255"`
}

// GET /inventory/users/:id/preferences
func GetPreferences(c *gin.Context) {
	var pref models.UserPreference
	if err := config.DB.First(&pref, "user_id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preferences not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, pref)
}

// PUT /inventory/users/:id/preferences creates or replaces the account's single
// preference row.
func UpdatePreferences(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var input PreferenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	var pref models.UserPreference
	err := config.DB.First(&pref, "user_id = ?", user.ID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		pref = models.UserPreference{UserID: user.ID}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pref.DietaryRestrictions = input.DietaryRestrictions
	pref.FavoriteCuisines = input.FavoriteCuisines
	if err := config.DB.Save(&pref).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

// GET /inventory/users/:id/history returns every history row for the account,
// oldest first. An unknown or history-less account yields an empty list, not an
// error.
func ListHistory(c *gin.Context) {
	var history []models.InventoryHistory
	if err := config.DB.Where("user_id = ?", c.Param("id")).Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
