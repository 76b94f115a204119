package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

// ownProfileID parses the :id path parameter and checks it against the
// authenticated user. The profile routes only operate on the caller's own
// account.
func ownProfileID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return 0, false
	}
	if uint(id) != auth.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "cannot access another user's profile"})
		return 0, false
	}
	return uint(id), true
}

// GetProfileHandler returns the user's profile.
func GetProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ownProfileID(c)
		if !ok {
			return
		}

		var user models.User
		err := db.First(&user, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfileHandler updates username, email, avatar and bio.
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ownProfileID(c)
		if !ok {
			return
		}

		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Avatar   string `json:"avatar"`
			Bio      string `json:"bio"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and email are required"})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"username": body.Username,
			"email":    body.Email,
			"avatar":   body.Avatar,
			"bio":      body.Bio,
		})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": result.Error.Error()})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// StatsHandler returns per-entity record counts for the profile page.
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ownProfileID(c)
		if !ok {
			return
		}

		counts := map[string]int64{}
		for name, model := range map[string]interface{}{
			"entries": &models.Entry{},
			"tasks":   &models.Task{},
			"todos":   &models.Todo{},
			"moods":   &models.Mood{},
			"notes":   &models.Note{},
		} {
			var count int64
			if err := db.Model(model).Where("user_id = ?", id).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			counts[name] = count
		}
		c.JSON(http.StatusOK, counts)
	}
}

// ChangePasswordHandler verifies the current password and stores a new
// bcrypt hash.
func ChangePasswordHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := ownProfileID(c)
		if !ok {
			return
		}

		var body struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.CurrentPassword == "" || body.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "current_password and new_password are required"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "current password is incorrect"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "password updated"})
	}
}
