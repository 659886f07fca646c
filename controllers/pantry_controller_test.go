package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createItem(t *testing.T, r http.Handler, token, name string, quantity, threshold int) uint {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/inventory/items", token, gin.H{
		"name":      name,
		"quantity":  quantity,
		"threshold": threshold,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeObject(t, w)["id"].(float64))
}

func TestItemCRUD(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	id := createItem(t, r, token, "Flour", 3, 1)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/inventory/items/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Flour", decodeObject(t, w)["name"])

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/inventory/items/%d", id), token, gin.H{
		"name":      "Bread Flour",
		"quantity":  2,
		"threshold": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeObject(t, w)
	assert.Equal(t, "Bread Flour", got["name"])
	assert.EqualValues(t, 2, got["quantity"])

	w = doRequest(t, r, http.MethodGet, "/inventory/items", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = doRequest(t, r, http.MethodDelete, fmt.Sprintf("/inventory/items/%d", id), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/inventory/items/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemValidation(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	w := doRequest(t, r, http.MethodPost, "/inventory/items", token, gin.H{"quantity": 3})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields, ok := decodeObject(t, w)["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "name")
}

func TestItemNotFound(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/inventory/items/999"},
		{http.MethodPut, "/inventory/items/999"},
		{http.MethodDelete, "/inventory/items/999"},
		{http.MethodPut, "/inventory/items/999/update"},
		{http.MethodDelete, "/inventory/items/999/remove"},
	} {
		w := doRequest(t, r, tc.method, tc.path, token, gin.H{"name": "x", "quantity": 1})
		assert.Equalf(t, http.StatusNotFound, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestLowStockBoundary(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	createItem(t, r, token, "Milk", 1, 2)  // 1 < 2: low
	createItem(t, r, token, "Eggs", 2, 2)  // 2 == 2: not low
	createItem(t, r, token, "Salt", 5, 2)  // plenty
	createItem(t, r, token, "Rice", 0, 1)  // empty: low

	w := doRequest(t, r, http.MethodGet, "/inventory/items/low-stock", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	names := []string{}
	for _, it := range decodeList(t, w) {
		names = append(names, it["name"].(string))
	}
	assert.Equal(t, []string{"Milk", "Rice"}, names)
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	id := createItem(t, r, token, "Milk", 1, 2)

	w := doRequest(t, r, http.MethodGet, "/inventory/items/low-stock", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeList(t, w), 1)

	// Quantity is required.
	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/inventory/items/%d/update", id), token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPut, fmt.Sprintf("/inventory/items/%d/update", id), token, gin.H{"quantity": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, decodeObject(t, w)["quantity"])

	// Restocked, so it leaves the low-stock list.
	w = doRequest(t, r, http.MethodGet, "/inventory/items/low-stock", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestRemoveItemEndpoint(t *testing.T) {
	r := setupRouter(t)
	_, token := registerUser(t, r, "pantry")

	id := createItem(t, r, token, "Milk", 1, 2)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/inventory/items/%d/remove", id), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/inventory/items/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
