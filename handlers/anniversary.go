package handlers

import (
	"errors"
	"net/http"

	"evermore/services/anniversary"
	"evermore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnniversaryHandler exposes anniversary CRUD endpoints.
type AnniversaryHandler struct {
	Service anniversary.AnniversaryService
}

func NewAnniversaryHandler(svc anniversary.AnniversaryService) *AnniversaryHandler {
	return &AnniversaryHandler{Service: svc}
}

// CreateAnniversaryHandler handles POST /api/anniversaries.
func (h *AnniversaryHandler) CreateAnniversaryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req anniversary.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	annv, err := h.Service.Create(req)
	if err != nil {
		if errors.Is(err, anniversary.ErrDuplicateTitle) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create anniversary", zap.String("title", req.Title), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, annv)
}

// GetAnniversariesHandler handles GET /api/anniversaries.
func (h *AnniversaryHandler) GetAnniversariesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	anniversaries, err := h.Service.GetAll()
	if err != nil {
		logger.Error("Failed to list anniversaries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, anniversaries)
}

// GetAnniversaryHandler handles GET /api/anniversaries/:id.
func (h *AnniversaryHandler) GetAnniversaryHandler(c *gin.Context) {
	id := c.Param("id")
	annv, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, anniversary.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, annv)
}

// UpdateAnniversaryHandler handles PUT /api/anniversaries/:id.
func (h *AnniversaryHandler) UpdateAnniversaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var req anniversary.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	annv, err := h.Service.Update(id, req)
	if err != nil {
		switch {
		case errors.Is(err, anniversary.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, anniversary.ErrDuplicateTitle):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update anniversary", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, annv)
}

// DeleteAnniversaryHandler handles DELETE /api/anniversaries/:id.
func (h *AnniversaryHandler) DeleteAnniversaryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Failed to delete anniversary", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Anniversary deleted"})
}
