package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/monitoring"
)

// RegisterRoutes mounts every route on the router. Public catalog reads
// and the contact form take no auth; every user-scoped mutation sits
// behind AuthMiddleware.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend running"})
	})
	r.GET("/metrics", monitoring.PrometheusHandler())

	api := r.Group("/api")
	{
		api.POST("/auth/register", Register)
		api.POST("/auth/login", Login)

		api.GET("/games", GetGames)
		api.GET("/games/:id", GetGameByID)
		api.GET("/categories", GetCategories)
		api.GET("/reviews/:gameId", GetReviews)
		api.POST("/contact", SubmitContact)
		api.GET("/stats", GetStats)

		protected := api.Group("/").Use(AuthMiddleware())
		{
			protected.GET("/me", Me)
			protected.GET("/wishlist", GetWishlist)
			protected.POST("/wishlist/:gameId", AddToWishlist)
			protected.DELETE("/wishlist/:gameId", RemoveFromWishlist)
			protected.POST("/reviews", CreateReview)
			protected.GET("/orders", GetOrders)
			protected.POST("/orders", CreateOrder)
			protected.PUT("/orders/:id", MarkOrderPaid)
		}
	}
}
