// Package server assembles the HTTP routing table.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/activity"
	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/crypto"
	"github.com/daybookhq/daybook/internal/entries"
	"github.com/daybookhq/daybook/internal/health"
	"github.com/daybookhq/daybook/internal/moods"
	"github.com/daybookhq/daybook/internal/notes"
	"github.com/daybookhq/daybook/internal/notify"
	"github.com/daybookhq/daybook/internal/tasks"
	"github.com/daybookhq/daybook/internal/todos"
	"github.com/daybookhq/daybook/internal/transfer"
	"github.com/daybookhq/daybook/internal/users"
)

// Deps bundles everything the route table needs.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Logger    *slog.Logger
	Publisher *activity.Publisher
	Catalog   *moods.Catalog
	Notifier  *notify.Client
	Encryptor *crypto.TokenEncryptor
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(d.Logger))

	// Cookie session store backs the OAuth handshake only; API clients
	// authenticate with bearer tokens.
	store := cookie.NewStore([]byte(d.Config.SessionSecret))
	r.Use(sessions.Sessions("daybook_session", store))

	r.GET("/health", gin.WrapF(health.Handler))

	r.POST("/api/auth", auth.HandleAuth(d.DB, d.Config, d.Notifier, d.Encryptor))
	r.GET("/auth/google", auth.HandleGoogleLogin)
	r.GET("/auth/google/callback", auth.HandleGoogleCallback(d.DB, d.Config))

	api := r.Group("/api", auth.RequireAuth([]byte(d.Config.JWTSecret)))
	{
		api.GET("/entries", entries.ListHandler(d.DB))
		api.POST("/entries", entries.CreateHandler(d.DB, d.Publisher))
		api.GET("/entries/:id", entries.GetHandler(d.DB))
		api.PUT("/entries/:id", entries.UpdateHandler(d.DB))
		api.DELETE("/entries/:id", entries.DeleteHandler(d.DB))
		api.GET("/entries/:id/preview", entries.PreviewHandler(d.DB))
		api.POST("/entries/editor", entries.EditorKeyHandler())

		api.GET("/tasks", tasks.ListHandler(d.DB))
		api.POST("/tasks", tasks.CreateHandler(d.DB))
		api.GET("/tasks/:id", tasks.GetHandler(d.DB))
		api.PUT("/tasks/:id", tasks.UpdateHandler(d.DB))
		api.DELETE("/tasks/:id", tasks.DeleteHandler(d.DB))

		api.GET("/todo", todos.ListHandler(d.DB))
		api.GET("/todo/trash", todos.TrashHandler(d.DB))
		api.POST("/todo", todos.CreateHandler(d.DB))
		api.PUT("/todo/:id", todos.UpdateHandler(d.DB))
		api.DELETE("/todo/:id", todos.SoftDeleteHandler(d.DB, d.Publisher))
		api.PUT("/todo/:id/restore", todos.RestoreHandler(d.DB))
		api.DELETE("/todo/:id/permanent", todos.PermanentDeleteHandler(d.DB))

		api.GET("/moods", moods.ListHandler(d.DB))
		api.GET("/moods/stats", moods.StatsHandler(d.DB))
		api.POST("/moods", moods.CreateHandler(d.DB, d.Catalog, d.Publisher))
		api.DELETE("/moods/:id", moods.DeleteHandler(d.DB))

		api.GET("/notes", notes.ListHandler(d.DB))
		api.POST("/notes", notes.CreateHandler(d.DB, d.Publisher))
		api.GET("/notes/:id", notes.GetHandler(d.DB))
		api.PUT("/notes/:id", notes.UpdateHandler(d.DB))
		api.DELETE("/notes/:id", notes.DeleteHandler(d.DB))
		api.PATCH("/notes/:id/favorite", notes.FavoriteHandler(d.DB))
		api.POST("/notes/upload-audio", notes.UploadAudioHandler(d.Config.AudioDir))
		api.GET("/notes/audio/:filename", notes.ServeAudioHandler(d.Config.AudioDir))

		api.GET("/users/profile/:id", users.GetProfileHandler(d.DB))
		api.PUT("/users/profile/:id", users.UpdateProfileHandler(d.DB))
		api.GET("/users/profile/:id/stats", users.StatsHandler(d.DB))
		api.PUT("/users/profile/:id/password", users.ChangePasswordHandler(d.DB))

		api.GET("/export", transfer.ExportHandler(d.DB))
		api.POST("/import", transfer.ImportHandler(d.DB))
	}

	return r
}

// requestLogger logs one line per request with method, path, status and
// latency.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
