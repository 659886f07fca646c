package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /inventory/analytics/spending returns fixed figures. No spending data is
// collected anywhere in the system.
func SpendingAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"spending": gin.H{
			"total_spent":     250.00,
			"monthly_average": 50.00,
		},
	})
}

// GET /inventory/analytics/usage returns fixed figures.
func UsageAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"usage": gin.H{
			"most_used_item": "Milk",
			"usage_pattern":  "Weekly",
		},
	})
}
