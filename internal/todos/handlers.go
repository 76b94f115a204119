package todos

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/activity"
	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

// ListHandler returns the user's active (non-trashed) todos.
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Todo
		if err := db.Where("user_id = ? AND is_deleted = ?", auth.UserID(c), false).
			Order("created_at DESC").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// TrashHandler returns the user's trashed todos, most recently trashed first.
func TrashHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Todo
		if err := db.Where("user_id = ? AND is_deleted = ?", auth.UserID(c), true).
			Order("deleted_at DESC").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateHandler creates a todo.
func CreateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Text       string     `json:"text"`
			ExpiryDate *time.Time `json:"expiry_date"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
			return
		}

		todo := models.Todo{
			Text:       body.Text,
			ExpiryDate: body.ExpiryDate,
			UserID:     auth.UserID(c),
		}
		if err := db.Create(&todo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, todo)
	}
}

// UpdateHandler updates an active todo's text and completion state.
func UpdateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Text       string     `json:"text"`
			Completed  bool       `json:"completed"`
			ExpiryDate *time.Time `json:"expiry_date"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
			return
		}

		result := db.Model(&models.Todo{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", c.Param("id"), auth.UserID(c), false).
			Updates(map[string]interface{}{
				"text":        body.Text,
				"completed":   body.Completed,
				"expiry_date": body.ExpiryDate,
			})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "todo not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "todo updated"})
	}
}

// SoftDeleteHandler moves a todo to the trash.
func SoftDeleteHandler(db *gorm.DB, publisher *activity.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)
		now := time.Now()
		result := db.Model(&models.Todo{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", c.Param("id"), userID, false).
			Updates(map[string]interface{}{"is_deleted": true, "deleted_at": now})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "todo not found"})
			return
		}

		if publisher != nil {
			if _, err := publisher.Publish(c.Request.Context(), activity.EventTodoTrashed, userID); err != nil {
				slog.Warn("Failed to publish activity event", "type", activity.EventTodoTrashed, "error", err.Error())
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "todo moved to trash"})
	}
}

// RestoreHandler moves a trashed todo back to the active list.
func RestoreHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Todo{}).
			Where("id = ? AND user_id = ? AND is_deleted = ?", c.Param("id"), auth.UserID(c), true).
			Updates(map[string]interface{}{"is_deleted": false, "deleted_at": nil})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "todo not found in trash"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "todo restored"})
	}
}

// PermanentDeleteHandler removes a trashed todo for good.
func PermanentDeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ? AND user_id = ? AND is_deleted = ?", c.Param("id"), auth.UserID(c), true).
			Delete(&models.Todo{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "todo not found in trash"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "todo permanently deleted"})
	}
}
