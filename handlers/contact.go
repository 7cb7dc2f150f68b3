package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/db"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/models"
	"github.com/pandiyarajan123098-dev/cheapgames39-backend/utils"
)

// SubmitContact stores an anonymous contact form message. All three
// fields are required.
func SubmitContact(c *gin.Context) {
	var input struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}

	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := db.DB.Create(&msg).Error; err != nil {
		utils.Log.Error("Contact error: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
