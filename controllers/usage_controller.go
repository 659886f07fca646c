package controllers

import (
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// POST /inventory/recipes/used appends a "used" history row for the given user.
func LogRecipeUsage(c *gin.Context) {
	var body struct {
		RecipeID uint `json:"recipe_id"`
		UserID   uint `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe or user"})
		return
	}

	// TODO: pick the item from the named recipe's ingredients. Today this grabs
	// the first pantry row regardless of recipe_id, which is what shipped.
	var item models.PantryItem
	if err := config.DB.First(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe or user"})
		return
	}

	history := models.InventoryHistory{
		UserID: user.ID,
		ItemID: item.ID,
		Action: "used",
	}
	if err := config.DB.Create(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
