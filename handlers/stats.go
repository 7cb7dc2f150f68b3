package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/concurrent"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// GetStats returns storefront-wide counts
func GetStats(c *gin.Context) {
	stats, err := concurrent.CalculateStorefrontStats()
	if err != nil {
		utils.Log.Error("Stats error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
