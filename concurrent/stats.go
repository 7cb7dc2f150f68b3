package concurrent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
)

type StorefrontStats struct {
	TotalGames      int64   `json:"total_games"`
	TotalCategories int64   `json:"total_categories"`
	TotalReviews    int64   `json:"total_reviews"`
	TotalOrders     int64   `json:"total_orders"`
	AverageRating   float64 `json:"average_rating"`
}

// CalculateStorefrontStats runs each count in its own goroutine. The
// queries are independent, so the wall time is that of the slowest one.
func CalculateStorefrontStats() (*StorefrontStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats := &StorefrontStats{}
	var wg sync.WaitGroup
	errChan := make(chan error, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := db.DB.Model(&models.Game{}).Count(&stats.TotalGames).Error; err != nil {
			errChan <- fmt.Errorf("games count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := db.DB.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
			errChan <- fmt.Errorf("categories count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := db.DB.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
			errChan <- fmt.Errorf("reviews count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := db.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
			errChan <- fmt.Errorf("orders count: %w", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		var avg struct{ Avg float64 }
		if err := db.DB.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0) as avg").
			Scan(&avg).Error; err != nil {
			errChan <- fmt.Errorf("average rating: %w", err)
			return
		}
		stats.AverageRating = avg.Avg
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
		close(errChan)
	}()

	select {
	case <-done:
		for err := range errChan {
			if err != nil {
				return nil, err
			}
		}
		return stats, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("timeout calculating stats")
	}
}
