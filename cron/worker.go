package cron

import (
	"context"
	"time"

	"evermore/config"
	"evermore/services/reminder"
	"evermore/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitReminderWorker starts the in-process daily schedule that invokes the
// automatic reminder run, for deployments without an external scheduler.
// Returns the scheduler so main can stop it on shutdown.
func InitReminderWorker(svc reminder.ReminderService) *cron.Cron {
	logger := utils.GetLogger()
	spec := config.AppConfig.ReminderCronSpec

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		report, err := svc.RunDaily(ctx)
		if err != nil {
			logger.Error("scheduled reminder run failed", zap.Error(err))
			return
		}
		logger.Info("scheduled reminder run finished",
			zap.Int("checked", report.AnniversariesChecked),
			zap.Int("triggered", report.AnniversariesTriggered),
			zap.Int("sent", report.TotalSent),
			zap.Int("failed", report.TotalFailed))
	})
	if err != nil {
		logger.Sugar().Fatalf("invalid reminder cron spec %q: %v", spec, err)
	}

	c.Start()
	logger.Info("reminder worker started", zap.String("spec", spec))
	return c
}
