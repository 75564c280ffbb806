package handlers

import (
	"bytes"
	"net/http"

	"evermore/services/storage"
	"evermore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves image blobs out of GridFS.
type StorageHandler struct {
	Images storage.ImageStore
}

func NewStorageHandler(images storage.ImageStore) *StorageHandler {
	return &StorageHandler{Images: images}
}

// GetImageHandler handles GET /api/images/:fileID.
func (h *StorageHandler) GetImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	fileID := c.Param("fileID")

	var buf bytes.Buffer
	if _, err := h.Images.Download(fileID, &buf); err != nil {
		logger.Warn("Image not found", zap.String("fileId", fileID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	contentType := http.DetectContentType(buf.Bytes())
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
