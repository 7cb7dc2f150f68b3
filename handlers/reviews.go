package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/cache"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// GetReviews lists a game's reviews newest first, with the reviewer
// joined in for display names. Cache-first when Redis is up.
func GetReviews(c *gin.Context) {
	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if cache.IsRedisAvailable() {
		if reviews, err := cache.GetReviews(uint(gameID)); err == nil {
			utils.Log.Debug(fmt.Sprintf("Cache HIT: reviews for game %d", gameID))
			c.JSON(http.StatusOK, reviews)
			return
		}
		utils.Log.Debug(fmt.Sprintf("Cache MISS: reviews for game %d", gameID))
	}

	var reviews []models.Review
	if err := db.DB.Preload("User").
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.Log.Error("Review fetch error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	if cache.IsRedisAvailable() {
		cache.SetReviews(uint(gameID), reviews)
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview inserts a review authored by the caller. game_id and
// rating are required; comment is optional.
func CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data"})
		return
	}
	if input.GameID == 0 || input.Rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data"})
		return
	}

	user := c.MustGet("user").(models.User)
	review := models.Review{
		UserID:  user.ID,
		GameID:  input.GameID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := db.DB.Create(&review).Error; err != nil {
		utils.Log.Error("Review insert error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	// Stale per-game cache is dropped off the request path
	go func(gID uint) {
		if cache.IsRedisAvailable() {
			cache.InvalidateReviews(gID)
		}
	}(review.GameID)

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
