package db

import (
	"log"
	"os"

	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres dbname=cheapgames password=postgres sslmode=disable"
	}

	var openErr error
	DB, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if openErr != nil {
		log.Fatal("failed to connect to the database:", openErr)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates or updates the schema for every model the service owns.
func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Game{},
		&models.Wishlist{},
		&models.Review{},
		&models.Order{},
		&models.ContactMessage{},
	)
}
