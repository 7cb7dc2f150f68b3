package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGames(t *testing.T) {
	r := setupTestRouter(t)
	action := createTestCategory(t, "Action")
	puzzle := createTestCategory(t, "Puzzle")
	createTestGame(t, "Doom Eternal", 19.99, action.ID)
	createTestGame(t, "Baba Is You", 9.99, puzzle.ID)

	w := doRequest(r, http.MethodGet, "/api/games", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	games := parseJSONArray(t, w)
	require.Len(t, games, 2)

	// Category rides along with each game
	first := games[0]["category"].(map[string]any)
	assert.NotEmpty(t, first["name"])
}

func TestGetGamesFilteredByCategory(t *testing.T) {
	r := setupTestRouter(t)
	action := createTestCategory(t, "Action")
	puzzle := createTestCategory(t, "Puzzle")
	createTestGame(t, "Doom Eternal", 19.99, action.ID)
	createTestGame(t, "Baba Is You", 9.99, puzzle.ID)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/games?categoryId=%d", puzzle.ID), "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	games := parseJSONArray(t, w)
	require.Len(t, games, 1)
	assert.Equal(t, "Baba Is You", games[0]["name"])
}

func TestGetGamesSearch(t *testing.T) {
	r := setupTestRouter(t)
	action := createTestCategory(t, "Action")
	createTestGame(t, "Doom Eternal", 19.99, action.ID)
	createTestGame(t, "Celeste", 14.99, action.ID)

	w := doRequest(r, http.MethodGet, "/api/games?search=doom", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	games := parseJSONArray(t, w)
	require.Len(t, games, 1)
	assert.Equal(t, "Doom Eternal", games[0]["name"])
}

func TestGetGameByID(t *testing.T) {
	r := setupTestRouter(t)
	action := createTestCategory(t, "Action")
	game := createTestGame(t, "Doom Eternal", 19.99, action.ID)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/games/%d", game.ID), "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := parseJSON(t, w)
	assert.Equal(t, "Doom Eternal", body["name"])
	assert.Equal(t, "Action", body["category"].(map[string]any)["name"])
}

func TestGetGameByIDNotFound(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/games/999", "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Game not found", parseJSON(t, w)["error"])
}

func TestGetCategories(t *testing.T) {
	r := setupTestRouter(t)
	createTestCategory(t, "Action")
	createTestCategory(t, "Puzzle")

	w := doRequest(r, http.MethodGet, "/api/categories", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, parseJSONArray(t, w), 2)
}
