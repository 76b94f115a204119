package database

import (
	"log"
	"time"

	"github.com/daybookhq/daybook/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDevData populates the database with development test data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	// Check if seed data already exists
	var existingUser models.User
	result := db.Where("email = ?", "dev@daybook.local").First(&existingUser)
	if result.Error == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("devpassword"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Create test user
	user := models.User{
		Username: "devuser",
		Email:    "dev@daybook.local",
		Password: string(hash),
		Bio:      "Local development account",
	}

	if err := db.Create(&user).Error; err != nil {
		return err
	}

	// A few diary entries, one with list syntax for the preview formatter
	entries := []models.Entry{
		{Title: "First day", Content: "Started keeping a diary again.", UserID: user.ID},
		{Title: "Groceries", Content: "1. milk\n2. eggs\n\n- call the bank\n- water the plants", UserID: user.ID},
	}
	if err := db.Create(&entries).Error; err != nil {
		return err
	}

	deadline := time.Now().AddDate(0, 0, 7)
	task := models.Task{
		Title:       "File taxes",
		Description: "Gather receipts first",
		Deadline:    &deadline,
		UserID:      user.ID,
	}
	if err := db.Create(&task).Error; err != nil {
		return err
	}

	// One active todo and one already in the trash
	trashedAt := time.Now().AddDate(0, 0, -2)
	todos := []models.Todo{
		{Text: "Buy a new notebook", UserID: user.ID},
		{Text: "Old reminder", IsDeleted: true, DeletedAt: &trashedAt, UserID: user.ID},
	}
	if err := db.Create(&todos).Error; err != nil {
		return err
	}

	// Three consecutive days of moods ending today, so the stats endpoint
	// has a streak to show
	moods := make([]models.Mood, 0, 3)
	for i := 0; i < 3; i++ {
		moods = append(moods, models.Mood{
			Mood:   "Happy",
			Date:   time.Now().AddDate(0, 0, -i),
			UserID: user.ID,
		})
	}
	if err := db.Create(&moods).Error; err != nil {
		return err
	}

	note := models.Note{
		Title:    "Reading list",
		Content:  "Books to pick up this month",
		Category: "Personal",
		Tags:     "books,reading",
		Priority: models.NotePriorityHigh,
		UserID:   user.ID,
	}
	if err := db.Create(&note).Error; err != nil {
		return err
	}

	log.Println("Seeded dev data: 1 user, 2 entries, 1 task, 2 todos, 3 moods, 1 note")
	return nil
}
