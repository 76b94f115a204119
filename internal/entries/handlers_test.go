package entries

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/entries/editor", EditorKeyHandler())
	return r
}

func TestEditorKeyHandlerContinuesNumberedList(t *testing.T) {
	r := editorRouter()

	body := `{"content": "1. milk", "cursor": 7, "key": "enter"}`
	req := httptest.NewRequest(http.MethodPost, "/api/entries/editor", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Content string `json:"content"`
		Cursor  int    `json:"cursor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1. milk\n2. ", resp.Content)
	assert.Equal(t, len(resp.Content), resp.Cursor)
}

func TestEditorKeyHandlerRequiresKey(t *testing.T) {
	r := editorRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/entries/editor", strings.NewReader(`{"content": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
