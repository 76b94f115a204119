package worker

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TaskPurgeTrash   = "todo:purge_trash"
	TaskCleanupAudio = "note:cleanup_audio"
)

// Package-level Asynq client (singleton)
var client *asynq.Client

// InitClient initializes the global Asynq client for task enqueueing.
// Must be called before any EnqueueX functions.
func InitClient(redisURL string) error {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return err
	}

	client = asynq.NewClient(opt)
	return nil
}

// CloseClient closes the Asynq client connection gracefully.
func CloseClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// EnqueueCleanupAudio schedules removal of an audio file that no note
// references anymore.
func EnqueueCleanupAudio(filename string) error {
	payload, err := json.Marshal(map[string]string{
		"filename": filename,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(
		TaskCleanupAudio,
		payload,
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Retention(24*time.Hour),
	)

	_, err = client.Enqueue(task)
	return err
}
