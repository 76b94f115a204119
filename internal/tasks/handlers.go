package tasks

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

// ListHandler returns the authenticated user's tasks, soonest deadline first.
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Task
		if err := db.Where("user_id = ?", auth.UserID(c)).
			Order("deadline ASC NULLS LAST").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetHandler returns a single task.
func GetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var task models.Task
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&task).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

// CreateHandler creates a task.
func CreateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Deadline    *time.Time `json:"deadline"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		task := models.Task{
			Title:       body.Title,
			Description: body.Description,
			Deadline:    body.Deadline,
			UserID:      auth.UserID(c),
		}
		if err := db.Create(&task).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

// UpdateHandler updates a task, including its completion state.
func UpdateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title       string     `json:"title"`
			Description string     `json:"description"`
			Deadline    *time.Time `json:"deadline"`
			IsCompleted bool       `json:"is_completed"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		result := db.Model(&models.Task{}).
			Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).
			Updates(map[string]interface{}{
				"title":        body.Title,
				"description":  body.Description,
				"deadline":     body.Deadline,
				"is_completed": body.IsCompleted,
			})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "task updated"})
	}
}

// DeleteHandler hard-deletes a task.
func DeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).Delete(&models.Task{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "task not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
	}
}
