package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeRendersMenusAndDishes(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)

	lunch := createMenu(t, router, "Lunch", "Weekdays only")
	createMenu(t, router, "Empty <menu>", "")
	createDish(t, router, "Soup", 5.5, lunch.ID)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))

	body := w.Body.String()
	assert.Contains(t, body, "Lunch")
	assert.Contains(t, body, "Weekdays only")
	assert.Contains(t, body, "Soup")
	assert.Contains(t, body, "5.50")
	assert.Contains(t, body, "Empty &lt;menu&gt;")
	assert.Contains(t, body, "No dishes.")
}

func TestHomeWithoutMenus(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No menus yet.")
}
