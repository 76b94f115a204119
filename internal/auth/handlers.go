package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/crypto"
	"github.com/daybookhq/daybook/internal/models"
	"github.com/daybookhq/daybook/internal/notify"
)

const resetTokenValidity = time.Hour

// HandleAuth dispatches POST /api/auth by the action query parameter:
// register, login, forgot-password, reset-password.
func HandleAuth(db *gorm.DB, cfg *config.Config, notifier *notify.Client, encryptor *crypto.TokenEncryptor) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Query("action") {
		case "register":
			handleRegister(c, db, cfg)
		case "login":
			handleLogin(c, db, cfg)
		case "forgot-password":
			handleForgotPassword(c, db, notifier, encryptor)
		case "reset-password":
			handleResetPassword(c, db, encryptor)
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "unknown auth action",
			})
		}
	}
}

func handleRegister(c *gin.Context, db *gorm.DB, cfg *config.Config) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Username == "" || body.Email == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "username, email and password are required",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	user := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	token, err := GenerateToken(user.ID, []byte(cfg.JWTSecret), TokenValidity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
		"message": "registered",
	})
}

func handleLogin(c *gin.Context, db *gorm.DB, cfg *config.Config) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || (body.Username == "" && body.Email == "") || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "username (or email) and password are required",
		})
		return
	}

	login := body.Username
	if login == "" {
		login = body.Email
	}

	var user models.User
	err := db.Where("username = ? OR email = ?", login, login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
		return
	}

	token, err := GenerateToken(user.ID, []byte(cfg.JWTSecret), TokenValidity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    user,
		"message": "logged in",
	})
}

func handleForgotPassword(c *gin.Context, db *gorm.DB, notifier *notify.Client, encryptor *crypto.TokenEncryptor) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email is required"})
		return
	}

	// Always answer with the same message so the endpoint cannot be used
	// to probe which addresses have accounts.
	accepted := gin.H{
		"success": true,
		"message": "if the address is registered, a reset link has been sent",
	}

	var user models.User
	err := db.Where("email = ?", body.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, accepted)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	plaintext := uuid.New().String()
	stored, err := encryptor.Encrypt(plaintext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	expires := time.Now().Add(resetTokenValidity)
	if err := db.Model(&user).Updates(map[string]interface{}{
		"reset_token":         stored,
		"reset_token_expires": expires,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := notifier.SendPasswordReset(c.Request.Context(), user.Email, plaintext); err != nil {
		slog.Error("Failed to deliver reset token", "email", user.Email, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to send reset email"})
		return
	}

	c.JSON(http.StatusOK, accepted)
}

func handleResetPassword(c *gin.Context, db *gorm.DB, encryptor *crypto.TokenEncryptor) {
	var body struct {
		Email    string `json:"email"`
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" || body.Token == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "email, token and password are required"})
		return
	}

	var user models.User
	err := db.Where("email = ?", body.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid reset token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if user.ResetToken == "" || user.ResetTokenExpires == nil || user.ResetTokenExpires.Before(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid reset token"})
		return
	}

	stored, err := encryptor.Decrypt(user.ResetToken)
	if err != nil || stored != body.Token {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid reset token"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password":            string(hash),
		"reset_token":         "",
		"reset_token_expires": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password updated"})
}

// HandleGoogleLogin initiates the Google OAuth flow
func HandleGoogleLogin(c *gin.Context) {
	// Gothic requires the "provider" query parameter
	q := c.Request.URL.Query()
	q.Add("provider", "google")
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// HandleGoogleCallback completes the OAuth flow, upserts the user, and
// hands a freshly minted bearer token back to the frontend via redirect.
func HandleGoogleCallback(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			slog.Error("OAuth completion failed", "error", err.Error())
			c.Redirect(http.StatusFound, "/login?error=auth_failed")
			return
		}

		var user models.User
		err = db.Where("email = ?", gothUser.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				Username: gothUser.Email,
				Email:    gothUser.Email,
				Avatar:   gothUser.AvatarURL,
				// No local password for OAuth accounts; login happens
				// through this flow only until the user sets one.
				Password: "oauth:" + uuid.New().String(),
			}
			if gothUser.Name != "" {
				user.Username = gothUser.Name
			}
			err = db.Create(&user).Error
		}
		if err != nil {
			slog.Error("OAuth user upsert failed", "email", gothUser.Email, "error", err.Error())
			c.Redirect(http.StatusFound, "/login?error=auth_failed")
			return
		}

		token, err := GenerateToken(user.ID, []byte(cfg.JWTSecret), TokenValidity)
		if err != nil {
			c.Redirect(http.StatusFound, "/login?error=auth_failed")
			return
		}

		slog.Info("User authenticated via Google", "email", gothUser.Email)
		c.Redirect(http.StatusFound, "/login/complete?token="+token)
	}
}
