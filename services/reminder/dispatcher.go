package reminder

import (
	"context"
	"strconv"
	"time"

	"evermore/models"
	"evermore/utils"

	"go.uber.org/zap"
)

const dateLayout = "January 2, 2006"

// Dispatcher sends one anniversary notification to every recipient, serially
// and in list order, pacing consecutive sends to stay under the provider's
// rate limit. Per-recipient failures are collected, never fatal to the batch.
type Dispatcher struct {
	sender         Sender
	reminderTmplID string
	todayTmplID    string
	pacing         time.Duration

	// sleep is swappable so tests don't pay the pacing delay.
	sleep func(time.Duration)
}

// DispatcherConfig wires the Dispatcher. Both template IDs are required.
type DispatcherConfig struct {
	Sender             Sender
	ReminderTemplateID string
	TodayTemplateID    string
	Pacing             time.Duration
}

func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	switch {
	case cfg.Sender == nil:
		return nil, ConfigError{Field: "sender"}
	case cfg.ReminderTemplateID == "":
		return nil, ConfigError{Field: "reminder template id"}
	case cfg.TodayTemplateID == "":
		return nil, ConfigError{Field: "today template id"}
	}
	if cfg.Pacing < 0 {
		cfg.Pacing = 0
	}
	return &Dispatcher{
		sender:         cfg.Sender,
		reminderTmplID: cfg.ReminderTemplateID,
		todayTmplID:    cfg.TodayTemplateID,
		pacing:         cfg.Pacing,
		sleep:          time.Sleep,
	}, nil
}

// Dispatch attempts one send per recipient and reports the batch outcome.
// asOf is the date the evaluation was made against and is what the emails
// stamp as the current date, so a run straddling midnight stays consistent
// with its own due-ness decision. The same-day celebration template is
// picked when eval.IsToday, otherwise the advance reminder template with a
// days_left parameter. Every recipient is attempted; Successful+Failed
// always equals len(recipients).
func (d *Dispatcher) Dispatch(ctx context.Context, asOf time.Time, recipients []models.Recipient, annv models.Anniversary, eval models.Evaluation) models.DispatchReport {
	logger := utils.GetLogger()
	report := models.DispatchReport{Errors: []models.SendError{}}

	templateID := d.reminderTmplID
	if eval.IsToday {
		templateID = d.todayTmplID
	}

	for i, rec := range recipients {
		params := map[string]string{
			"anniversary_name":    annv.Title,
			"anniversary_date":    annv.Date.Format(dateLayout),
			"anniversary_weekday": annv.Date.Weekday().String(),
			"current_date":        asOf.Format(dateLayout),
			"to_name":             rec.Name,
			"to_email":            rec.Email,
		}
		if !eval.IsToday {
			params["days_left"] = strconv.Itoa(eval.DaysUntil)
		}

		err := d.sender.Send(ctx, templateID, params)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, models.SendError{Email: rec.Email, Error: err.Error()})
			logger.Warn("reminder send failed",
				zap.String("anniversary", annv.Title),
				zap.String("recipient", rec.Email),
				zap.Error(err))
			continue
		}
		report.Successful++
		logger.Info("reminder sent",
			zap.String("anniversary", annv.Title),
			zap.String("recipient", rec.Email),
			zap.Bool("isToday", eval.IsToday))

		if i < len(recipients)-1 {
			d.sleep(d.pacing)
		}
	}
	return report
}
