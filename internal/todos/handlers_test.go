package todos

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/daybookhq/daybook/internal/auth"
	"github.com/daybookhq/daybook/internal/models"
)

func testRouter(t *testing.T, userID uint) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "todos.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Todo{}))

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(auth.ContextUserID, userID) })
	r.GET("/api/todo", ListHandler(db))
	r.GET("/api/todo/trash", TrashHandler(db))
	r.POST("/api/todo", CreateHandler(db))
	r.PUT("/api/todo/:id", UpdateHandler(db))
	r.DELETE("/api/todo/:id", SoftDeleteHandler(db, nil))
	r.PUT("/api/todo/:id/restore", RestoreHandler(db))
	r.DELETE("/api/todo/:id/permanent", PermanentDeleteHandler(db))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listFrom(t *testing.T, r *gin.Engine, path string) []models.Todo {
	t.Helper()
	w := do(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

func TestTodoTrashLifecycle(t *testing.T) {
	r := testRouter(t, 1)

	w := do(r, http.MethodPost, "/api/todo", `{"text": "buy milk"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	id := fmt.Sprintf("%d", created.ID)

	require.Len(t, listFrom(t, r, "/api/todo"), 1)
	require.Empty(t, listFrom(t, r, "/api/todo/trash"))

	// Trash it: gone from the active list, present in the trash with a
	// deletion timestamp.
	w = do(r, http.MethodDelete, "/api/todo/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, listFrom(t, r, "/api/todo"))
	trash := listFrom(t, r, "/api/todo/trash")
	require.Len(t, trash, 1)
	assert.True(t, trash[0].IsDeleted)
	assert.NotNil(t, trash[0].DeletedAt)

	// Restore brings it back untouched.
	w = do(r, http.MethodPut, "/api/todo/"+id+"/restore", "")
	require.Equal(t, http.StatusOK, w.Code)

	active := listFrom(t, r, "/api/todo")
	require.Len(t, active, 1)
	assert.Equal(t, "buy milk", active[0].Text)
	assert.False(t, active[0].IsDeleted)
	assert.Empty(t, listFrom(t, r, "/api/todo/trash"))

	// Trash again and delete permanently: absent from both lists.
	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/todo/"+id, "").Code)
	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/todo/"+id+"/permanent", "").Code)

	assert.Empty(t, listFrom(t, r, "/api/todo"))
	assert.Empty(t, listFrom(t, r, "/api/todo/trash"))
}

func TestTodoLifecycleGuards(t *testing.T) {
	r := testRouter(t, 1)

	w := do(r, http.MethodPost, "/api/todo", `{"text": "water plants"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := fmt.Sprintf("%d", created.ID)

	// Restore and permanent delete only act on trashed todos.
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/todo/"+id+"/restore", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/todo/"+id+"/permanent", "").Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/todo/"+id, "").Code)

	// A trashed todo cannot be edited or trashed twice.
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/todo/"+id, `{"text": "x"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/todo/"+id, "").Code)
}

func TestTodoCreateRequiresText(t *testing.T) {
	r := testRouter(t, 1)

	w := do(r, http.MethodPost, "/api/todo", `{"text": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodoUpdateTogglesCompletion(t *testing.T) {
	r := testRouter(t, 1)

	w := do(r, http.MethodPost, "/api/todo", `{"text": "call dentist"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := fmt.Sprintf("%d", created.ID)

	w = do(r, http.MethodPut, "/api/todo/"+id, `{"text": "call dentist", "completed": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	active := listFrom(t, r, "/api/todo")
	require.Len(t, active, 1)
	assert.True(t, active[0].Completed)
}
