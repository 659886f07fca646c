package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /inventory/scan returns the same item for any barcode. No scanner
// integration sits behind this endpoint.
func ScanBarcode(c *gin.Context) {
	var body struct {
		Barcode string `json:"barcode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode not provided"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":            "Scanned Item",
		"quantity":        1,
		"expiration_date": nil,
		"threshold":       1,
	})
}
