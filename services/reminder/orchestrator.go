package reminder

import (
	"context"
	"fmt"
	"time"

	"evermore/models"
	"evermore/utils"

	"go.uber.org/zap"
)

// TestWindowDays is the lookahead of the manual test run: due-ness is
// checked for day offsets 0 through TestWindowDays inclusive.
const TestWindowDays = 7

// AnniversarySource is the read-only view of the anniversary store the
// orchestrator consumes.
type AnniversarySource interface {
	GetAll() ([]models.Anniversary, error)
	GetByID(id string) (*models.Anniversary, error)
}

// RecipientSource is the read-only view of the user store, projected to
// notification targets.
type RecipientSource interface {
	ListRecipients() ([]models.Recipient, error)
}

// NotFoundError reports an unknown anniversary id in single-anniversary mode.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return "anniversary not found: " + e.ID
}

// Ensure DefaultReminderService implements ReminderService
var _ ReminderService = (*DefaultReminderService)(nil)

// DefaultReminderService composes the evaluator and dispatcher over the
// persistence read contracts. A run is one-shot and stateless: no watermark
// is kept between invocations, so two same-day runs both dispatch for the
// same due anniversary.
type DefaultReminderService struct {
	Anniversaries AnniversarySource
	Recipients    RecipientSource
	Dispatcher    *Dispatcher

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultReminderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// RunDaily evaluates every anniversary against today and dispatches for each
// due one. The automatic rule treats a same-day anniversary as due regardless
// of its configured lead time.
func (s *DefaultReminderService) RunDaily(ctx context.Context) (*models.DailyRunReport, error) {
	logger := utils.GetLogger()

	recipients, err := s.Recipients.ListRecipients()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}
	if len(recipients) == 0 {
		return &models.DailyRunReport{Message: "no registered users to notify"}, nil
	}

	anniversaries, err := s.Anniversaries.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load anniversaries: %w", err)
	}
	if len(anniversaries) == 0 {
		return &models.DailyRunReport{Message: "no anniversaries to check"}, nil
	}

	asOf := s.now()
	report := &models.DailyRunReport{AnniversariesChecked: len(anniversaries)}

	for _, annv := range anniversaries {
		eval := Evaluate(asOf, annv)
		if !eval.Due {
			continue
		}

		report.AnniversariesTriggered++
		batch := s.Dispatcher.Dispatch(ctx, asOf, recipients, annv, eval)
		report.TotalSent += batch.Successful
		report.TotalFailed += batch.Failed

		logger.Info("anniversary triggered",
			zap.String("title", annv.Title),
			zap.Int("daysUntil", eval.DaysUntil),
			zap.Bool("isToday", eval.IsToday),
			zap.Int("sent", batch.Successful),
			zap.Int("failed", batch.Failed))
	}

	if report.AnniversariesTriggered > 0 {
		report.UsersNotified = len(recipients)
	}
	return report, nil
}

// SendForAnniversary force-sends for one anniversary: once the id resolves
// the dispatch is unconditional, with today's evaluation choosing between
// the celebration and advance templates.
func (s *DefaultReminderService) SendForAnniversary(ctx context.Context, id string) (*SingleRunReport, error) {
	recipients, err := s.Recipients.ListRecipients()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}
	if len(recipients) == 0 {
		return &SingleRunReport{
			Message: "no registered users to notify",
			Errors:  []models.SendError{},
		}, nil
	}

	annv, err := s.Anniversaries.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load anniversary: %w", err)
	}
	if annv == nil {
		return nil, NotFoundError{ID: id}
	}

	asOf := s.now()
	eval := Evaluate(asOf, *annv)
	batch := s.Dispatcher.Dispatch(ctx, asOf, recipients, *annv, eval)
	return &SingleRunReport{
		Successful:      batch.Successful,
		Failed:          batch.Failed,
		TotalRecipients: len(recipients),
		Errors:          batch.Errors,
	}, nil
}

// RunTestWindow evaluates every anniversary across the 8-day lookahead and
// dispatches for each one that comes due on any day in the window.
func (s *DefaultReminderService) RunTestWindow(ctx context.Context) (*models.TestRunReport, error) {
	recipients, err := s.Recipients.ListRecipients()
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}
	if len(recipients) == 0 {
		return &models.TestRunReport{
			Message:             "no registered users to notify",
			FailedAnniversaries: []string{},
		}, nil
	}

	anniversaries, err := s.Anniversaries.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load anniversaries: %w", err)
	}

	asOf := s.now()
	report := &models.TestRunReport{FailedAnniversaries: []string{}}

	for _, annv := range anniversaries {
		eval, due := EvaluateWindow(asOf, annv, TestWindowDays)
		if !due {
			continue
		}

		report.TestedAnniversaries++
		batch := s.Dispatcher.Dispatch(ctx, asOf, recipients, annv, eval)
		report.Sent += batch.Successful
		report.Failed += batch.Failed
		if batch.Failed > 0 {
			report.FailedAnniversaries = append(report.FailedAnniversaries, annv.Title)
		}
	}
	return report, nil
}
