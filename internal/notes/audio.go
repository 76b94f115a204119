package notes

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxAudioSize caps uploads at 20 MiB.
const maxAudioSize = 20 << 20

var allowedAudioExtensions = map[string]bool{
	".webm": true,
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".wav":  true,
}

// UploadAudioHandler stores a multipart audio upload under a random
// filename and returns the metadata the note create/update calls echo
// back. The optional duration form field is reported by the recorder.
func UploadAudioHandler(audioDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("audio")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "audio file is required"})
			return
		}
		if file.Size > maxAudioSize {
			c.JSON(http.StatusBadRequest, gin.H{"message": "audio file too large"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedAudioExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported audio format"})
			return
		}

		if err := os.MkdirAll(audioDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		filename := uuid.New().String() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(audioDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		duration, _ := strconv.ParseFloat(c.PostForm("duration"), 64)
		c.JSON(http.StatusCreated, gin.H{
			"filename": filename,
			"size":     file.Size,
			"duration": duration,
		})
	}
}

// ServeAudioHandler streams a stored audio file by filename.
func ServeAudioHandler(audioDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Param("filename")
		// Uploaded names are uuid+extension; anything else is rejected to
		// keep the handler from serving arbitrary paths.
		if filename != filepath.Base(filename) || strings.Contains(filename, "..") {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid filename"})
			return
		}

		path := filepath.Join(audioDir, filename)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("audio file %s not found", filename)})
			return
		}
		c.File(path)
	}
}
