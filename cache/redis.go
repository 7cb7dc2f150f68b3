package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	ctx         = context.Background()
)

// InitRedis initializes the Redis connection. The cache is optional: when
// Redis is unreachable every caller falls back to the database.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:         redisURL,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RedisClient.Ping(pingCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

// IsRedisAvailable checks if Redis is connected
func IsRedisAvailable() bool {
	if RedisClient == nil {
		return false
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err == nil
}

const (
	gamesCacheKey      = "games:all"
	categoriesCacheKey = "categories:all"
	reviewsCachePrefix = "reviews:game:" // reviews:game:123
)

func set(key string, value interface{}, ttl time.Duration) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

func get(key string, dest interface{}) error {
	if !IsRedisAvailable() {
		return fmt.Errorf("redis not available")
	}
	val, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return fmt.Errorf("cache miss")
	}
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func del(key string) error {
	if !IsRedisAvailable() {
		return nil
	}
	return RedisClient.Del(ctx, key).Err()
}

// GetGames returns the cached games list
func GetGames() ([]models.Game, error) {
	var games []models.Game
	if err := get(gamesCacheKey, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// SetGames caches the games list for 5 minutes
func SetGames(games []models.Game) error {
	return set(gamesCacheKey, games, 5*time.Minute)
}

// InvalidateGames removes the games list cache
func InvalidateGames() error {
	return del(gamesCacheKey)
}

// GetCategories returns the cached categories list
func GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := get(categoriesCacheKey, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// SetCategories caches categories for 1 hour
func SetCategories(categories []models.Category) error {
	return set(categoriesCacheKey, categories, time.Hour)
}

// InvalidateCategories removes the categories cache
func InvalidateCategories() error {
	return del(categoriesCacheKey)
}

// GetReviews returns cached reviews for a game
func GetReviews(gameID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := get(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetReviews caches reviews for 10 minutes
func SetReviews(gameID uint, reviews []models.Review) error {
	return set(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID), reviews, 10*time.Minute)
}

// InvalidateReviews removes the reviews cache for a game
func InvalidateReviews(gameID uint) error {
	return del(fmt.Sprintf("%s%d", reviewsCachePrefix, gameID))
}
