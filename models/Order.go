package models

import "time"

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	BillingName    string    `gorm:"not null" json:"billing_name"`
	BillingEmail   string    `gorm:"not null" json:"billing_email"`
	BillingAddress string    `json:"billing_address"`
	BillingCity    string    `json:"billing_city"`
	BillingZip     string    `json:"billing_zip"`
	TotalPrice     float64   `gorm:"not null" json:"total_price"`
	Status         string    `gorm:"not null;default:'pending'" json:"status"`
	TransactionID  string    `json:"transaction_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderInput - payload for POST /api/orders. Status and user are set by
// the server; only billing data is accepted from the client.
type OrderInput struct {
	BillingName    string  `json:"billing_name"`
	BillingEmail   string  `json:"billing_email"`
	BillingAddress string  `json:"billing_address"`
	BillingCity    string  `json:"billing_city"`
	BillingZip     string  `json:"billing_zip"`
	TotalPrice     float64 `json:"total_price"`
}
