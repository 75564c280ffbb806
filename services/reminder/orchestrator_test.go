package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"evermore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnniversaries struct {
	all    []models.Anniversary
	err    error
	called int
}

func (s *stubAnniversaries) GetAll() ([]models.Anniversary, error) {
	s.called++
	return s.all, s.err
}

func (s *stubAnniversaries) GetByID(id string) (*models.Anniversary, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.all {
		if a.ID == id {
			annv := a
			return &annv, nil
		}
	}
	return nil, nil
}

type stubRecipients struct {
	list []models.Recipient
	err  error
}

func (s *stubRecipients) ListRecipients() ([]models.Recipient, error) {
	return s.list, s.err
}

func newTestService(t *testing.T, sender Sender, annvs []models.Anniversary, recipients []models.Recipient) (*DefaultReminderService, *stubAnniversaries) {
	t.Helper()
	d, err := NewDispatcher(DispatcherConfig{
		Sender:             sender,
		ReminderTemplateID: "tmpl_reminder",
		TodayTemplateID:    "tmpl_today",
	})
	require.NoError(t, err)
	d.sleep = func(time.Duration) {}

	annvSource := &stubAnniversaries{all: annvs}
	svc := &DefaultReminderService{
		Anniversaries: annvSource,
		Recipients:    &stubRecipients{list: recipients},
		Dispatcher:    d,
		Now:           func() time.Time { return date(2026, time.June, 10) },
	}
	return svc, annvSource
}

func TestRunDaily(t *testing.T) {
	asOf := date(2026, time.June, 10)
	annvs := []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 5), ReminderDays: 5},
		{ID: "a2", Title: "First Kiss", Date: asOf.AddDate(0, 0, 9), ReminderDays: 5},
		{ID: "a3", Title: "Engagement", Date: asOf, ReminderDays: 30},
	}
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender, annvs, testRecipients())

	report, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.AnniversariesChecked)
	assert.Equal(t, 2, report.AnniversariesTriggered)
	assert.Equal(t, 3, report.UsersNotified)
	assert.Equal(t, 6, report.TotalSent)
	assert.Equal(t, 0, report.TotalFailed)
	// One batch per due anniversary, full recipient list each.
	assert.Len(t, sender.sends, 6)
}

func TestRunDailySameDayTriggersOnEasternClock(t *testing.T) {
	// Anniversary dates are stored as UTC midnights while the scheduler runs
	// on the server's local clock; a zone ahead of UTC must still see the
	// stored date as today.
	sgt := time.FixedZone("UTC+8", 8*60*60)
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender, []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: date(2026, time.June, 10), ReminderDays: 10},
	}, testRecipients())
	svc.Now = func() time.Time { return time.Date(2026, time.June, 10, 8, 0, 0, 0, sgt) }

	report, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.AnniversariesTriggered)
	require.Len(t, sender.sends, 3)
	assert.Equal(t, "tmpl_today", sender.sends[0].templateID)
}

func TestRunDailyEmptyRecipientsShortCircuits(t *testing.T) {
	sender := &fakeSender{}
	svc, annvSource := newTestService(t, sender, []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: date(2026, time.June, 15), ReminderDays: 5},
	}, nil)

	report, err := svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalSent)
	assert.Equal(t, 0, report.TotalFailed)
	assert.NotEmpty(t, report.Message)
	// Anniversaries are never even loaded.
	assert.Equal(t, 0, annvSource.called)
	assert.Empty(t, sender.sends)
}

func TestRunDailyEmptyAnniversaries(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender, nil, testRecipients())

	report, err := svc.RunDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.AnniversariesChecked)
	assert.Equal(t, 0, report.TotalSent)
	assert.Empty(t, sender.sends)
}

func TestRunDailyPartialSendFailuresFoldIntoTotals(t *testing.T) {
	asOf := date(2026, time.June, 10)
	sender := &fakeSender{failFor: map[string]error{
		"bob@example.com": errors.New("provider down"),
	}}
	svc, _ := newTestService(t, sender, []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 5), ReminderDays: 5},
	}, testRecipients())

	report, err := svc.RunDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalSent)
	assert.Equal(t, 1, report.TotalFailed)
}

func TestRunDailyRepositoryErrorIsFatal(t *testing.T) {
	sender := &fakeSender{}
	svc, annvSource := newTestService(t, sender, nil, testRecipients())
	annvSource.err = errors.New("mongo unavailable")

	report, err := svc.RunDaily(context.Background())
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Empty(t, sender.sends)
}

func TestRunDailyRepeatedRunsDoubleSend(t *testing.T) {
	// Known limitation: there is no idempotency ledger, so two same-day
	// runs both dispatch full batches for the same due anniversary.
	asOf := date(2026, time.June, 10)
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender, []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 5), ReminderDays: 5},
	}, testRecipients())

	_, err := svc.RunDaily(context.Background())
	require.NoError(t, err)
	_, err = svc.RunDaily(context.Background())
	require.NoError(t, err)

	assert.Len(t, sender.sends, 6, "every recipient is notified twice")
}

func TestSendForAnniversary(t *testing.T) {
	asOf := date(2026, time.June, 10)

	t.Run("force send when not due", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newTestService(t, sender, []models.Anniversary{
			{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 9), ReminderDays: 5},
		}, testRecipients())

		report, err := svc.SendForAnniversary(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, 3, report.Successful)
		assert.Equal(t, 0, report.Failed)
		assert.Equal(t, 3, report.TotalRecipients)
		// Not today, so the advance template is used.
		require.NotEmpty(t, sender.sends)
		assert.Equal(t, "tmpl_reminder", sender.sends[0].templateID)
	})

	t.Run("same-day force send picks celebration template", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newTestService(t, sender, []models.Anniversary{
			{ID: "a1", Title: "Wedding", Date: asOf, ReminderDays: 5},
		}, testRecipients())

		_, err := svc.SendForAnniversary(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, "tmpl_today", sender.sends[0].templateID)
	})

	t.Run("no registered users short-circuits with a message", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newTestService(t, sender, []models.Anniversary{
			{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 9), ReminderDays: 5},
		}, nil)

		report, err := svc.SendForAnniversary(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, 0, report.Successful)
		assert.Equal(t, 0, report.Failed)
		assert.NotEmpty(t, report.Message)
		assert.Empty(t, sender.sends)
	})

	t.Run("unknown id is a not-found error", func(t *testing.T) {
		sender := &fakeSender{}
		svc, _ := newTestService(t, sender, nil, testRecipients())

		_, err := svc.SendForAnniversary(context.Background(), "missing")
		var notFound NotFoundError
		require.Error(t, err)
		assert.True(t, errors.As(err, &notFound))
		assert.Empty(t, sender.sends)
	})
}

func TestRunTestWindow(t *testing.T) {
	asOf := date(2026, time.June, 10)
	annvs := []models.Anniversary{
		// Lead-day match at offset 2.
		{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 7), ReminderDays: 5},
		// Same-day hit at offset 3.
		{ID: "a2", Title: "Engagement", Date: asOf.AddDate(0, 0, 3), ReminderDays: 30},
		// Outside the window entirely.
		{ID: "a3", Title: "First Date", Date: asOf.AddDate(0, 0, 30), ReminderDays: 5},
	}
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender, annvs, testRecipients())

	report, err := svc.RunTestWindow(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.TestedAnniversaries)
	assert.Equal(t, 6, report.Sent)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.FailedAnniversaries)
}

func TestRunTestWindowRecordsFailedAnniversaries(t *testing.T) {
	asOf := date(2026, time.June, 10)
	sender := &fakeSender{failFor: map[string]error{
		"alice@example.com": errors.New("provider down"),
	}}
	svc, _ := newTestService(t, sender, []models.Anniversary{
		{ID: "a1", Title: "Wedding", Date: asOf.AddDate(0, 0, 5), ReminderDays: 5},
	}, testRecipients())

	report, err := svc.RunTestWindow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []string{"Wedding"}, report.FailedAnniversaries)
}
