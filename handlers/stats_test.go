package handlers

import (
	"net/http"
	"testing"

	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	r := setupTestRouter(t)
	user, _ := createTestUser(t, "u@example.com", "User One")
	category := createTestCategory(t, "Action")
	game := createTestGame(t, "Doom Eternal", 19.99, category.ID)
	require.NoError(t, db.DB.Create(&models.Review{UserID: user.ID, GameID: game.ID, Rating: 4}).Error)
	require.NoError(t, db.DB.Create(&models.Review{UserID: user.ID, GameID: game.ID, Rating: 2}).Error)

	w := doRequest(r, http.MethodGet, "/api/stats", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	stats := parseJSON(t, w)
	assert.EqualValues(t, 1, stats["total_games"])
	assert.EqualValues(t, 1, stats["total_categories"])
	assert.EqualValues(t, 2, stats["total_reviews"])
	assert.EqualValues(t, 0, stats["total_orders"])
	assert.EqualValues(t, 3, stats["average_rating"])
}
