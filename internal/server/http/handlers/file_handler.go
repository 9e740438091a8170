package handlers

import (
	"github.com/gin-gonic/gin"
)

// FileHandler serves stored uploads.
type FileHandler struct {
	facade FileFacade
}

// NewFileHandler constructs FileHandler.
func NewFileHandler(facade FileFacade) *FileHandler {
	return &FileHandler{facade: facade}
}

// Get handles GET /files/:filename.
func (h *FileHandler) Get(c *gin.Context) {
	path, err := h.facade.FilePath(c.Param("filename"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.File(path)
}
