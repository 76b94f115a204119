package notes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/activity"
	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
	"github.com/daybookhq/daybook/internal/worker"
)

type noteBody struct {
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	Category      string  `json:"category"`
	Tags          string  `json:"tags"`
	Priority      string  `json:"priority"`
	AudioFilename string  `json:"audio_filename"`
	AudioDuration float64 `json:"audio_duration"`
	AudioSize     int64   `json:"audio_size"`
}

// ListHandler returns the user's notes through the search/filter/sort
// pipeline. Query parameters: q, category, priority, favorites=true.
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var all []models.Note
		if err := db.Where("user_id = ?", auth.UserID(c)).Find(&all).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		filtered := ApplyFilter(all, Filter{
			Query:         c.Query("q"),
			Category:      c.Query("category"),
			Priority:      c.Query("priority"),
			FavoritesOnly: c.Query("favorites") == "true",
		})
		c.JSON(http.StatusOK, filtered)
	}
}

// GetHandler returns a single note.
func GetHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var note models.Note
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&note).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, note)
	}
}

// CreateHandler creates a note, optionally referencing a previously
// uploaded audio file.
func CreateHandler(db *gorm.DB, publisher *activity.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body noteBody
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		note := models.Note{
			Title:         body.Title,
			Content:       body.Content,
			Category:      body.Category,
			Tags:          body.Tags,
			Priority:      defaultPriority(body.Priority),
			HasAudio:      body.AudioFilename != "",
			AudioFilename: body.AudioFilename,
			AudioDuration: body.AudioDuration,
			AudioSize:     body.AudioSize,
			UserID:        auth.UserID(c),
		}
		if err := db.Create(&note).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if publisher != nil {
			if _, err := publisher.Publish(c.Request.Context(), activity.EventNoteCreated, note.UserID); err != nil {
				slog.Warn("Failed to publish activity event", "type", activity.EventNoteCreated, "error", err.Error())
			}
		}
		c.JSON(http.StatusCreated, note)
	}
}

// UpdateHandler updates a note. Replacing the audio attachment schedules
// cleanup of the old file.
func UpdateHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body noteBody
		if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title is required"})
			return
		}

		var note models.Note
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&note).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		oldAudio := note.AudioFilename
		updates := map[string]interface{}{
			"title":          body.Title,
			"content":        body.Content,
			"category":       body.Category,
			"tags":           body.Tags,
			"priority":       defaultPriority(body.Priority),
			"has_audio":      body.AudioFilename != "",
			"audio_filename": body.AudioFilename,
			"audio_duration": body.AudioDuration,
			"audio_size":     body.AudioSize,
		}
		if err := db.Model(&note).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if oldAudio != "" && oldAudio != body.AudioFilename {
			if err := worker.EnqueueCleanupAudio(oldAudio); err != nil {
				slog.Warn("Failed to enqueue audio cleanup", "filename", oldAudio, "error", err.Error())
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "note updated"})
	}
}

// DeleteHandler removes a note and schedules cleanup of its audio file.
func DeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var note models.Note
		err := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).First(&note).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if err := db.Delete(&note).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if note.HasAudio && note.AudioFilename != "" {
			if err := worker.EnqueueCleanupAudio(note.AudioFilename); err != nil {
				slog.Warn("Failed to enqueue audio cleanup", "filename", note.AudioFilename, "error", err.Error())
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
	}
}

// FavoriteHandler flips a note's favorite flag.
func FavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Note{}).
			Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).
			Update("is_favorite", gorm.Expr("NOT is_favorite"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "note not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "favorite toggled"})
	}
}

func defaultPriority(priority string) string {
	switch priority {
	case models.NotePriorityLow, models.NotePriorityMedium, models.NotePriorityHigh:
		return priority
	default:
		return models.NotePriorityMedium
	}
}
