package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /inventory/notifications returns a fixed payload. No notification engine
// sits behind this endpoint.
func ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{
		{"message": "Milk is running low", "item": "Milk"},
		{"message": "Eggs will expire soon", "item": "Eggs"},
	})
}
