package models

import "time"

// Wishlist links a user to a saved game. One row per (user, game) pair;
// the composite unique index is enforced by the database.
type Wishlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_game" json:"user_id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_game" json:"game_id"`
	Game      Game      `gorm:"foreignKey:GameID" json:"game"`
	CreatedAt time.Time `json:"created_at"`
}
