package handlers

import (
	"errors"
	"net/http"

	"evermore/services/reminder"
	"evermore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the three reminder entry points: the scheduler
// call, the single-anniversary force send and the test-window run.
type ReminderHandler struct {
	Service reminder.ReminderService
}

func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// DailyRemindersHandler handles POST /api/cron/daily-reminders. Called by
// the external scheduler; returns a best-effort summary even when some
// sends failed.
func (h *ReminderHandler) DailyRemindersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	report, err := h.Service.RunDaily(c.Request.Context())
	if err != nil {
		logger.Error("Daily reminder run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// SendAnniversaryReminderHandler handles POST /api/anniversaries/:id/remind.
// Force-sends for one anniversary regardless of due-ness.
func (h *ReminderHandler) SendAnniversaryReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	report, err := h.Service.SendForAnniversary(c.Request.Context(), id)
	if err != nil {
		var notFound reminder.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Single-anniversary reminder failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// TestRemindersHandler handles POST /api/reminders/test. Evaluates the
// 8-day window and dispatches for every hit; used to verify the pipeline
// without waiting for a real trigger date.
func (h *ReminderHandler) TestRemindersHandler(c *gin.Context) {
	logger := utils.GetLogger()

	report, err := h.Service.RunTestWindow(c.Request.Context())
	if err != nil {
		logger.Error("Test reminder run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
