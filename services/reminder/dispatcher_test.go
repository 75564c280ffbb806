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

// fakeSender records every send and fails for emails in failFor.
type fakeSender struct {
	sends   []sentMail
	failFor map[string]error
}

type sentMail struct {
	templateID string
	params     map[string]string
}

func (f *fakeSender) Send(_ context.Context, templateID string, params map[string]string) error {
	if err, ok := f.failFor[params["to_email"]]; ok {
		return err
	}
	f.sends = append(f.sends, sentMail{templateID: templateID, params: params})
	return nil
}

func newTestDispatcher(t *testing.T, sender Sender) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(DispatcherConfig{
		Sender:             sender,
		ReminderTemplateID: "tmpl_reminder",
		TodayTemplateID:    "tmpl_today",
		Pacing:             time.Second,
	})
	require.NoError(t, err)
	d.sleep = func(time.Duration) {}
	return d
}

func testRecipients() []models.Recipient {
	return []models.Recipient{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
	}
}

func TestNewDispatcherValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  DispatcherConfig
	}{
		{"missing sender", DispatcherConfig{ReminderTemplateID: "a", TodayTemplateID: "b"}},
		{"missing reminder template", DispatcherConfig{Sender: &fakeSender{}, TodayTemplateID: "b"}},
		{"missing today template", DispatcherConfig{Sender: &fakeSender{}, ReminderTemplateID: "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDispatcher(tt.cfg)
			var cfgErr ConfigError
			require.Error(t, err)
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestDispatchAllSucceed(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	annv := models.Anniversary{Title: "Wedding", Date: date(2026, time.June, 15)}
	eval := models.Evaluation{Due: true, DaysUntil: 5}

	report := d.Dispatch(context.Background(), date(2026, time.June, 10), testRecipients(), annv, eval)

	assert.Equal(t, 3, report.Successful)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, report.Errors)
	require.Len(t, sender.sends, 3)

	// Advance template with days_left, recipients attempted in list order.
	assert.Equal(t, "tmpl_reminder", sender.sends[0].templateID)
	assert.Equal(t, "5", sender.sends[0].params["days_left"])
	assert.Equal(t, "alice@example.com", sender.sends[0].params["to_email"])
	assert.Equal(t, "bob@example.com", sender.sends[1].params["to_email"])
	assert.Equal(t, "carol@example.com", sender.sends[2].params["to_email"])
}

func TestDispatchTemplateParams(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	annv := models.Anniversary{Title: "First Date", Date: date(2026, time.June, 15)}
	report := d.Dispatch(context.Background(), date(2026, time.June, 10), testRecipients()[:1], annv, models.Evaluation{Due: true, DaysUntil: 5})

	require.Equal(t, 1, report.Successful)
	params := sender.sends[0].params
	assert.Equal(t, "First Date", params["anniversary_name"])
	assert.Equal(t, "June 15, 2026", params["anniversary_date"])
	assert.Equal(t, "Monday", params["anniversary_weekday"])
	assert.Equal(t, "Alice", params["to_name"])
	// Emails are stamped with the run's own as-of date, not the wall clock,
	// so sends straddling midnight stay consistent with their evaluation.
	assert.Equal(t, "June 10, 2026", params["current_date"])
}

func TestDispatchSameDayUsesCelebrationTemplate(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	annv := models.Anniversary{Title: "Wedding", Date: date(2026, time.June, 10)}
	eval := models.Evaluation{Due: true, IsToday: true, DaysUntil: 0}

	d.Dispatch(context.Background(), date(2026, time.June, 10), testRecipients()[:1], annv, eval)

	require.Len(t, sender.sends, 1)
	assert.Equal(t, "tmpl_today", sender.sends[0].templateID)
	_, hasDaysLeft := sender.sends[0].params["days_left"]
	assert.False(t, hasDaysLeft, "celebration template carries no days_left")
}

func TestDispatchPartialFailureContinues(t *testing.T) {
	sender := &fakeSender{failFor: map[string]error{
		"bob@example.com": errors.New("provider rejected"),
	}}
	d := newTestDispatcher(t, sender)

	annv := models.Anniversary{Title: "Wedding", Date: date(2026, time.June, 15)}
	report := d.Dispatch(context.Background(), date(2026, time.June, 10), testRecipients(), annv, models.Evaluation{Due: true, DaysUntil: 5})

	assert.Equal(t, 2, report.Successful)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "bob@example.com", report.Errors[0].Email)
	assert.Contains(t, report.Errors[0].Error, "provider rejected")

	// The third recipient was still attempted after the failure.
	require.Len(t, sender.sends, 2)
	assert.Equal(t, "carol@example.com", sender.sends[1].params["to_email"])
}

func TestDispatchBatchInvariant(t *testing.T) {
	sender := &fakeSender{failFor: map[string]error{
		"alice@example.com": errors.New("bounce"),
		"carol@example.com": errors.New("bounce"),
	}}
	d := newTestDispatcher(t, sender)

	recipients := testRecipients()
	report := d.Dispatch(context.Background(), date(2026, time.June, 10), recipients, models.Anniversary{Title: "X", Date: date(2026, time.June, 15)}, models.Evaluation{Due: true, DaysUntil: 5})

	assert.Equal(t, len(recipients), report.Successful+report.Failed)
}

func TestDispatchPacesBetweenSends(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	var sleeps []time.Duration
	d.sleep = func(dur time.Duration) { sleeps = append(sleeps, dur) }

	d.Dispatch(context.Background(), date(2026, time.June, 10), testRecipients(), models.Anniversary{Title: "X", Date: date(2026, time.June, 15)}, models.Evaluation{Due: true, DaysUntil: 5})

	// Pacing after every successful send except the last.
	require.Len(t, sleeps, 2)
	assert.Equal(t, time.Second, sleeps[0])
}

func TestDispatchEmptyRecipients(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(t, sender)

	report := d.Dispatch(context.Background(), date(2026, time.June, 10), nil, models.Anniversary{Title: "X", Date: date(2026, time.June, 15)}, models.Evaluation{Due: true})

	assert.Equal(t, 0, report.Successful)
	assert.Equal(t, 0, report.Failed)
	assert.Empty(t, sender.sends)
}
