package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PantryItemInput struct {
	Name           string     `json:"name" binding:"required,max=100"`
	Quantity       *int       `json:"quantity"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Threshold      *int       `json:"threshold"`
}

// GET /inventory/items
func ListItems(c *gin.Context) {
	var items []models.PantryItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /inventory/items
func CreateItem(c *gin.Context) {
	var input PantryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	item := models.PantryItem{
		Name:           input.Name,
		Quantity:       intOr(input.Quantity, 0),
		ExpirationDate: input.ExpirationDate,
		Threshold:      intOr(input.Threshold, 1),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GET /inventory/items/:id
func GetItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

// PUT /inventory/items/:id
func UpdateItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var input PantryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindingErrors(err))
		return
	}

	item.Name = input.Name
	item.Quantity = intOr(input.Quantity, 0)
	item.ExpirationDate = input.ExpirationDate
	item.Threshold = intOr(input.Threshold, 1)
	if err := config.DB.Save(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /inventory/items/:id
func DeleteItem(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}
	if err := config.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /inventory/items/low-stock
func LowStockItems(c *gin.Context) {
	var items []models.PantryItem
	if err := config.DB.Where("quantity < threshold").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// PUT /inventory/items/:id/update updates only the quantity.
func UpdateItemQuantity(c *gin.Context) {
	item, ok := findItem(c)
	if !ok {
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity not provided"})
		return
	}

	item.Quantity = *body.Quantity
	if err := config.DB.Save(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /inventory/items/:id/remove
func RemoveItem(c *gin.Context) {
	DeleteItem(c)
}

func findItem(c *gin.Context) (*models.PantryItem, bool) {
	var item models.PantryItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &item, true
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
