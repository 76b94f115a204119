package transfer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

func transferRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "transfer.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Entry{}, &models.Task{}, &models.Todo{}, &models.Mood{}, &models.Note{},
	))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.ContextUserID, uint(1)) })
	r.GET("/api/export", ExportHandler(db))
	r.POST("/api/import", ImportHandler(db))
	return r, db
}

func export(t *testing.T, r *gin.Engine) []byte {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.Bytes()
}

// A brand-new account exports empty collections; that document must still be
// accepted back by the import endpoint.
func TestExportOfEmptyAccountRoundTrips(t *testing.T) {
	r, _ := transferRouter(t)

	exported := export(t, r)
	assert.Contains(t, string(exported), `"entries":[]`)
	assert.NotContains(t, string(exported), "null")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(string(exported)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestExportImportRoundTripCopiesRecords(t *testing.T) {
	r, db := transferRouter(t)

	require.NoError(t, db.Create(&models.Entry{Title: "Day one", Content: "hello", UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Mood{Mood: "Happy", Date: time.Now(), UserID: 1}).Error)
	require.NoError(t, db.Create(&models.Todo{Text: "buy milk", UserID: 1}).Error)

	exported := export(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(string(exported)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Imported map[string]int `json:"imported"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Imported["entries"])
	assert.Equal(t, 1, resp.Imported["moods"])
	assert.Equal(t, 1, resp.Imported["todos"])
	assert.Equal(t, 0, resp.Imported["notes"])

	// Imported rows are copies with fresh IDs, not upserts.
	var entryCount int64
	require.NoError(t, db.Model(&models.Entry{}).Count(&entryCount).Error)
	assert.EqualValues(t, 2, entryCount)
}
