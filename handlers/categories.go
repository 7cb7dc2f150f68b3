package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/cache"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// GetCategories lists all categories, cache-first
func GetCategories(c *gin.Context) {
	if cache.IsRedisAvailable() {
		if categories, err := cache.GetCategories(); err == nil {
			utils.Log.Debug("Cache HIT: categories")
			c.JSON(http.StatusOK, categories)
			return
		}
		utils.Log.Debug("Cache MISS: categories")
	}

	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		utils.Log.Error("Category fetch error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetCategories(categories)
	}

	c.JSON(http.StatusOK, categories)
}
