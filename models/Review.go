package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	GameID    uint      `gorm:"not null" json:"game_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewInput - payload for POST /api/reviews. The author is always the
// authenticated caller, never taken from the body.
type ReviewInput struct {
	GameID  uint   `json:"game_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
