package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/monitoring"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// CreateOrder inserts an order owned by the caller in "pending" status
// and returns the created row. billing_name, billing_email and
// total_price are required; the rest of the billing block is optional.
func CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.BillingName == "" || input.BillingEmail == "" || input.TotalPrice == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user := c.MustGet("user").(models.User)
	order := models.Order{
		UserID:         user.ID,
		BillingName:    input.BillingName,
		BillingEmail:   input.BillingEmail,
		BillingAddress: input.BillingAddress,
		BillingCity:    input.BillingCity,
		BillingZip:     input.BillingZip,
		TotalPrice:     input.TotalPrice,
		Status:         models.OrderStatusPending,
	}

	if err := db.DB.Create(&order).Error; err != nil {
		utils.Log.Error("Order create error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	monitoring.OrdersCreatedTotal.Inc()
	c.JSON(http.StatusCreated, order)
}

// MarkOrderPaid records the payment transaction and moves the order from
// "pending" to "paid". The update predicate conjoins the caller's ID with
// the path ID, so nobody can pay out another user's order row.
func MarkOrderPaid(c *gin.Context) {
	var input struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing transaction ID"})
		return
	}

	user := c.MustGet("user").(models.User)
	id := c.Param("id")

	result := db.DB.Model(&models.Order{}).
		Where("id = ? AND user_id = ?", id, user.ID).
		Updates(map[string]interface{}{
			"transaction_id": input.TransactionID,
			"status":         models.OrderStatusPaid,
		})
	if result.Error != nil || result.RowsAffected == 0 {
		if result.Error != nil {
			utils.Log.Error("Order update error: ", result.Error)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	var order models.Order
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&order).Error; err != nil {
		utils.Log.Error("Order update error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrders lists the caller's orders newest first
func GetOrders(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var orders []models.Order
	if err := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.Log.Error("Order fetch error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
