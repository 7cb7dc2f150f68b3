package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// GetWishlist lists the caller's wishlist with each saved game joined in.
// The query is always scoped to the authenticated user.
func GetWishlist(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var entries []models.Wishlist
	if err := db.DB.Preload("Game").Preload("Game.Category").
		Where("user_id = ?", user.ID).
		Find(&entries).Error; err != nil {
		utils.Log.Error("Wishlist fetch error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddToWishlist inserts a (caller, game) pair. The game ID comes from the
// path; the user ID only ever from the verified identity.
func AddToWishlist(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	gameID, err := strconv.ParseUint(c.Param("gameId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	entry := models.Wishlist{UserID: user.ID, GameID: uint(gameID)}
	if err := db.DB.Create(&entry).Error; err != nil {
		utils.Log.Error("Wishlist insert error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// RemoveFromWishlist deletes the row matching the caller and the game.
// Deleting another user's entry is impossible: the predicate always
// includes the caller's own ID.
func RemoveFromWishlist(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	gameID := c.Param("gameId")

	if err := db.DB.Where("user_id = ? AND game_id = ?", user.ID, gameID).
		Delete(&models.Wishlist{}).Error; err != nil {
		utils.Log.Error("Wishlist delete error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
