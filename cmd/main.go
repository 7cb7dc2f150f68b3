package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/cache"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/handlers"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/middleware"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/monitoring"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	db.InitDB()
	monitoring.InitMetrics()

	if err := cache.InitRedis(); err != nil {
		utils.Log.Warn("Redis unavailable, caching disabled: ", err)
	} else {
		defer cache.CloseRedis()
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())
	r.Use(cors.New(corsConfig()))

	handlers.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	utils.Log.Info("Server running on port ", port)
	if err := r.Run(":" + port); err != nil {
		utils.Log.Fatal("Failed to start server: ", err)
	}
}

// corsConfig builds the CORS policy from CORS_ORIGIN, a comma-separated
// origin list. Empty or "*" allows any origin.
func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" || origin == "*" {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = strings.Split(origin, ",")
	}
	return cfg
}
