package handlers

import (
	"errors"
	"net/http"

	"evermore/config"
	"evermore/services/memory"
	"evermore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemoryHandler exposes memory CRUD and image attachment endpoints.
type MemoryHandler struct {
	Service memory.MemoryService
}

func NewMemoryHandler(svc memory.MemoryService) *MemoryHandler {
	return &MemoryHandler{Service: svc}
}

func callerIdentity(c *gin.Context) (string, bool) {
	id, _ := c.Get("userID")
	idStr, _ := id.(string)
	isAdmin, _ := c.Get("isAdmin")
	admin, _ := isAdmin.(bool)
	return idStr, admin
}

func writeMemoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, memory.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, memory.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// CreateMemoryHandler handles POST /api/memories.
func (h *MemoryHandler) CreateMemoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	callerID, _ := callerIdentity(c)

	var req memory.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mem, err := h.Service.Create(callerID, req)
	if err != nil {
		logger.Error("Failed to create memory", zap.String("user", callerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mem)
}

// GetMemoriesHandler handles GET /api/memories.
func (h *MemoryHandler) GetMemoriesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	memories, err := h.Service.GetAll()
	if err != nil {
		logger.Error("Failed to list memories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, memories)
}

// GetMemoryHandler handles GET /api/memories/:id.
func (h *MemoryHandler) GetMemoryHandler(c *gin.Context) {
	mem, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		writeMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, mem)
}

// UpdateMemoryHandler handles PUT /api/memories/:id. Owner or admin.
func (h *MemoryHandler) UpdateMemoryHandler(c *gin.Context) {
	callerID, admin := callerIdentity(c)

	var req memory.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mem, err := h.Service.Update(c.Param("id"), callerID, admin, req)
	if err != nil {
		writeMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, mem)
}

// DeleteMemoryHandler handles DELETE /api/memories/:id. Owner or admin.
func (h *MemoryHandler) DeleteMemoryHandler(c *gin.Context) {
	callerID, admin := callerIdentity(c)
	if err := h.Service.Delete(c.Param("id"), callerID, admin); err != nil {
		writeMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Memory deleted"})
}

// UploadImageHandler handles POST /api/memories/:id/images (multipart).
func (h *MemoryHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	callerID, admin := callerIdentity(c)

	maxBytes := config.AppConfig.MaxUploadSizeMB << 20
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	img, err := h.Service.AttachImage(c.Param("id"), callerID, admin, fileHeader.Filename, file)
	if err != nil {
		writeMemoryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

// RemoveImageHandler handles DELETE /api/memories/:id/images/:fileID.
func (h *MemoryHandler) RemoveImageHandler(c *gin.Context) {
	callerID, admin := callerIdentity(c)
	if err := h.Service.RemoveImage(c.Param("id"), c.Param("fileID"), callerID, admin); err != nil {
		writeMemoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed"})
}
