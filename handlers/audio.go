package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"innkeeper/utils"
)

// AudioHandler serves previously rendered reply audio.
type AudioHandler struct {
	Dir string
}

func NewAudioHandler(dir string) *AudioHandler {
	return &AudioHandler{Dir: dir}
}

// HandleGet streams a stored audio file: GET /audio/:filename.
func (h *AudioHandler) HandleGet(c *gin.Context) {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".mp3") {
		utils.JSONError(c, http.StatusBadRequest, "Invalid audio filename", filename)
		return
	}

	path := filepath.Join(h.Dir, filename)
	if _, err := os.Stat(path); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Audio file not found", filename)
		return
	}
	c.File(path)
}
