package entries

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/activity"
	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/editor"
	"github.com/daybookhq/daybook/internal/models"
)

// ListHandler returns the authenticated user's diary entries, newest first.
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Entry
		if err := db.Where("user_id = ?", auth.UserID(c)).Order("created_at DESC").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetHandler returns a single entry owned by the authenticated user.
func GetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry models.Entry
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entry)
	}
}

// CreateHandler creates an entry and publishes an activity event.
func CreateHandler(db *gorm.DB, publisher *activity.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		entry := models.Entry{
			Title:   body.Title,
			Content: body.Content,
			UserID:  auth.UserID(c),
		}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		publish(c, publisher, activity.EventEntryCreated, entry.UserID)
		c.JSON(http.StatusCreated, entry)
	}
}

// UpdateHandler updates an entry's title and content.
func UpdateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		result := db.Model(&models.Entry{}).
			Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).
			Updates(map[string]interface{}{"title": body.Title, "content": body.Content})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "entry updated"})
	}
}

// DeleteHandler removes an entry.
func DeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).Delete(&models.Entry{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
	}
}

// PreviewHandler renders an entry's content as HTML through the list
// formatter.
func PreviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry models.Entry
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "entry not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.Header("Content-Type", "text/html")
		c.String(http.StatusOK, FormatContent(entry.Content))
	}
}

// EditorKeyHandler applies a single editor keystroke (enter or tab) to the
// submitted content and returns the updated content and cursor position.
func EditorKeyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Content string `json:"content"`
			Cursor  int    `json:"cursor"`
			Key     string `json:"key"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "content, cursor and key are required"})
			return
		}

		content, cursor := editor.ApplyKey(body.Content, body.Cursor, body.Key)
		c.JSON(http.StatusOK, gin.H{"content": content, "cursor": cursor})
	}
}

// publish sends an activity event, logging but never surfacing failures.
func publish(c *gin.Context, publisher *activity.Publisher, eventType string, userID uint) {
	if publisher == nil {
		return
	}
	if _, err := publisher.Publish(c.Request.Context(), eventType, userID); err != nil {
		slog.Warn("Failed to publish activity event", "type", eventType, "error", err.Error())
	}
}
