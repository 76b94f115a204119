package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/models"
)

// trashRetention is how long trashed todos survive before the purge job
// removes them.
const trashRetention = 30 * 24 * time.Hour

// asynqLoggerAdapter wraps slog.Logger to implement asynq.Logger interface
type asynqLoggerAdapter struct {
	logger *slog.Logger
}

func (a *asynqLoggerAdapter) Debug(args ...interface{}) {
	a.logger.Debug(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Info(args ...interface{}) {
	a.logger.Info(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Warn(args ...interface{}) {
	a.logger.Warn(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Error(args ...interface{}) {
	a.logger.Error(fmt.Sprint(args...))
}

func (a *asynqLoggerAdapter) Fatal(args ...interface{}) {
	a.logger.Error(fmt.Sprint(args...))
	panic(fmt.Sprint(args...))
}

// Start starts the Asynq worker in non-blocking mode and returns a stop
// function so the caller can coordinate shutdown with the HTTP server.
func Start(cfg *config.Config, db *gorm.DB) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     5,
			ShutdownTimeout: 30 * time.Second,
			ErrorHandler:    asynq.ErrorHandlerFunc(makeErrorHandler(logger)),
			Logger:          &asynqLoggerAdapter{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskPurgeTrash, handlePurgeTrash(logger, db))
	mux.HandleFunc(TaskCleanupAudio, handleCleanupAudio(logger, cfg.AudioDir))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start worker: %w", err)
	}

	logger.Info("Worker started", "concurrency", 5, "redis", cfg.RedisURL)
	return func() { srv.Shutdown() }, nil
}

// handlePurgeTrash hard-deletes todos that have sat in the trash longer
// than the retention window.
func handlePurgeTrash(logger *slog.Logger, db *gorm.DB) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		cutoff := time.Now().Add(-trashRetention)

		result := db.WithContext(ctx).
			Where("is_deleted = ? AND deleted_at < ?", true, cutoff).
			Delete(&models.Todo{})
		if result.Error != nil {
			// Database error - retryable
			return fmt.Errorf("failed to purge trash: %w", result.Error)
		}

		logger.Info(
			"Processed todo:purge_trash task",
			"purged", result.RowsAffected,
			"cutoff", cutoff.Format(time.RFC3339),
		)
		return nil
	}
}

// handleCleanupAudio removes an orphaned audio file from disk.
func handleCleanupAudio(logger *slog.Logger, audioDir string) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload struct {
			Filename string `json:"filename"`
		}
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			// Invalid payload - don't retry
			return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
		}
		if payload.Filename == "" || payload.Filename != filepath.Base(payload.Filename) {
			return fmt.Errorf("unsafe filename %q: %w", payload.Filename, asynq.SkipRetry)
		}

		path := filepath.Join(audioDir, payload.Filename)
		if err := os.Remove(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// Already gone - nothing to do
				logger.Info("Audio file already removed", "filename", payload.Filename)
				return nil
			}
			return fmt.Errorf("failed to remove audio file: %w", err)
		}

		logger.Info("Removed audio file", "filename", payload.Filename)
		return nil
	}
}

// makeErrorHandler creates an error handler function with logger closure.
func makeErrorHandler(logger *slog.Logger) func(context.Context, *asynq.Task, error) {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		logger.Error(
			"Task execution failed",
			"task_type", task.Type(),
			"error", err.Error(),
			"retry_count", retried,
			"max_retry", maxRetry,
		)

		// Check if this is the final failure (task will move to dead letter queue)
		if retried >= maxRetry {
			logger.Error(
				"Task moved to dead letter queue (all retries exhausted)",
				"task_type", task.Type(),
				"payload", string(task.Payload()),
			)
		}
	}
}
