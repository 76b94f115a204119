package moods

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

// ListHandler returns the user's mood history, most recent first.
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Mood
		if err := db.Where("user_id = ?", auth.UserID(c)).Order("date DESC").Find(&list).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// CreateHandler logs a mood for a day. The label must come from the
// catalog; the date defaults to now.
func CreateHandler(db *gorm.DB, catalog *Catalog, publisher *activity.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Mood string `json:"mood"`
			Date string `json:"date"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Mood == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "mood is required"})
			return
		}
		if !catalog.Contains(body.Mood) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown mood label"})
			return
		}

		date := time.Now()
		if body.Date != "" {
			parsed, err := parseDate(body.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "date must be ISO 8601"})
				return
			}
			date = parsed
		}

		mood := models.Mood{
			Mood:   body.Mood,
			Date:   date,
			UserID: auth.UserID(c),
		}
		if err := db.Create(&mood).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if publisher != nil {
			if _, err := publisher.Publish(c.Request.Context(), activity.EventMoodLogged, mood.UserID); err != nil {
				slog.Warn("Failed to publish activity event", "type", activity.EventMoodLogged, "error", err.Error())
			}
		}
		c.JSON(http.StatusCreated, mood)
	}
}

// DeleteHandler removes a mood entry.
func DeleteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ? AND user_id = ?", c.Param("id"), auth.UserID(c)).Delete(&models.Mood{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "mood not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "mood deleted"})
	}
}

// StatsHandler computes streak, today's mood and the most common mood over
// the user's full history. An empty history yields a null stats object.
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var history []models.Mood
		if err := db.Where("user_id = ?", auth.UserID(c)).Order("date DESC").Find(&history).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": ComputeStats(history, time.Now())})
	}
}

// parseDate accepts full RFC 3339 timestamps or bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
