package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixed-response endpoints are part of the contract: the exact payloads are
// pinned here so a well-meaning change to them shows up as a failure.

func TestNotificationsStub(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "stub")

	w := doRequest(t, r, http.MethodGet, "/inventory/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []map[string]any{
		{"message": "Milk is running low", "item": "Milk"},
		{"message": "Eggs will expire soon", "item": "Eggs"},
	}, decodeList(t, w))
}

func TestScanStub(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "stub")

	w := doRequest(t, r, http.MethodPost, "/inventory/scan", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Same item for any barcode.
	for _, code := range []string{"123", "999999"} {
		w = doRequest(t, r, http.MethodPost, "/inventory/scan", token, gin.H{"barcode": code})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{
			"name":            "Scanned Item",
			"quantity":        float64(1),
			"expiration_date": nil,
			"threshold":       float64(1),
		}, decodeObject(t, w))
	}
}

func TestAnalyticsStubs(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "stub")

	w := doRequest(t, r, http.MethodGet, "/inventory/analytics/spending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"spending": map[string]any{
			"total_spent":     float64(250),
			"monthly_average": float64(50),
		},
	}, decodeObject(t, w))

	w = doRequest(t, r, http.MethodGet, "/inventory/analytics/usage", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{
		"usage": map[string]any{
			"most_used_item": "Milk",
			"usage_pattern":  "Weekly",
		},
	}, decodeObject(t, w))
}
