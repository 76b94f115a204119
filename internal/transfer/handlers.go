package transfer

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

// SchemaVersion identifies the export document format.
const SchemaVersion = "v1"

// Document is the export/import wire format: one flat object holding all
// of a user's records.
type Document struct {
	SchemaVersion string         `json:"schema_version"`
	Entries       []models.Entry `json:"entries"`
	Tasks         []models.Task  `json:"tasks"`
	Todos         []models.Todo  `json:"todos"`
	Moods         []models.Mood  `json:"moods"`
	Notes         []models.Note  `json:"notes"`
}

// ExportHandler returns every record the authenticated user owns as a
// single JSON document.
func ExportHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.UserID(c)

		// Collections start as empty slices, not nil, so they marshal as
		// [] and the exported document always satisfies the import schema.
		doc := Document{
			SchemaVersion: SchemaVersion,
			Entries:       []models.Entry{},
			Tasks:         []models.Task{},
			Todos:         []models.Todo{},
			Moods:         []models.Mood{},
			Notes:         []models.Note{},
		}

		for _, dst := range []interface{}{&doc.Entries, &doc.Tasks, &doc.Todos, &doc.Moods, &doc.Notes} {
			if err := db.Where("user_id = ?", userID).Find(dst).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
		}

		c.Header("Content-Disposition", `attachment; filename="daybook-export.json"`)
		c.JSON(http.StatusOK, doc)
	}
}

// ImportHandler validates an export document against the import schema and
// inserts its records under the authenticated user. Record IDs from the
// source system are discarded.
func ImportHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "failed to read request body"})
			return
		}

		var untyped map[string]interface{}
		if err := json.Unmarshal(raw, &untyped); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "body must be a JSON object"})
			return
		}
		if err := ValidateImport(untyped); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		userID := auth.UserID(c)
		imported := map[string]int{}

		err = db.Transaction(func(tx *gorm.DB) error {
			for i := range doc.Entries {
				doc.Entries[i].ID = 0
				doc.Entries[i].UserID = userID
			}
			if len(doc.Entries) > 0 {
				if err := tx.Create(&doc.Entries).Error; err != nil {
					return err
				}
			}
			imported["entries"] = len(doc.Entries)

			for i := range doc.Tasks {
				doc.Tasks[i].ID = 0
				doc.Tasks[i].UserID = userID
			}
			if len(doc.Tasks) > 0 {
				if err := tx.Create(&doc.Tasks).Error; err != nil {
					return err
				}
			}
			imported["tasks"] = len(doc.Tasks)

			for i := range doc.Todos {
				doc.Todos[i].ID = 0
				doc.Todos[i].UserID = userID
			}
			if len(doc.Todos) > 0 {
				if err := tx.Create(&doc.Todos).Error; err != nil {
					return err
				}
			}
			imported["todos"] = len(doc.Todos)

			for i := range doc.Moods {
				doc.Moods[i].ID = 0
				doc.Moods[i].UserID = userID
			}
			if len(doc.Moods) > 0 {
				if err := tx.Create(&doc.Moods).Error; err != nil {
					return err
				}
			}
			imported["moods"] = len(doc.Moods)

			for i := range doc.Notes {
				doc.Notes[i].ID = 0
				doc.Notes[i].UserID = userID
			}
			if len(doc.Notes) > 0 {
				if err := tx.Create(&doc.Notes).Error; err != nil {
					return err
				}
			}
			imported["notes"] = len(doc.Notes)

			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "imported": imported})
	}
}
