package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/cache"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// GetGames lists the catalog with each game's category. The unfiltered
// list is served from cache when Redis is up.
func GetGames(c *gin.Context) {
	categoryID := c.Query("categoryId")
	search := c.Query("search")
	filtered := categoryID != "" || search != ""

	if !filtered && cache.IsRedisAvailable() {
		if games, err := cache.GetGames(); err == nil {
			utils.Log.Debug("Cache HIT: games")
			c.JSON(http.StatusOK, games)
			return
		}
		utils.Log.Debug("Cache MISS: games")
	}

	var games []models.Game
	query := db.DB.Preload("Category")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if err := query.Find(&games).Error; err != nil {
		utils.Log.Error("Fetch games error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}

	if !filtered && cache.IsRedisAvailable() {
		cache.SetGames(games)
	}

	c.JSON(http.StatusOK, games)
}

// GetGameByID fetches a single game with its category. A miss is a 404,
// never an empty 200.
func GetGameByID(c *gin.Context) {
	id := c.Param("id")

	var game models.Game
	if err := db.DB.Preload("Category").First(&game, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, game)
}
