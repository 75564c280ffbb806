package reminder

import (
	"testing"
	"time"

	"evermore/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	asOf := date(2026, time.June, 10)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"three days ahead", date(2026, time.June, 13), 3},
		{"same day", date(2026, time.June, 10), 0},
		{"yesterday", date(2026, time.June, 9), -1},
		{"across month boundary", date(2026, time.July, 1), 21},
		{"across year boundary", date(2027, time.January, 1), 205},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(asOf, tt.target))
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	target := date(2026, time.June, 15)

	morning := time.Date(2026, time.June, 10, 0, 15, 0, 0, time.UTC)
	night := time.Date(2026, time.June, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, 5, DaysUntil(morning, target))
	assert.Equal(t, 5, DaysUntil(night, target))

	// Target time-of-day is just as irrelevant.
	lateTarget := time.Date(2026, time.June, 15, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, DaysUntil(morning, lateTarget))
}

func TestDaysUntilOnNonUTCClock(t *testing.T) {
	// Stored dates are UTC midnights but the reference time comes from the
	// server clock in whatever zone it happens to run. The comparison is by
	// calendar day, never by instant, so a zone offset must not skew the
	// count in either direction.
	target := date(2026, time.June, 10)

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{
			"morning east of UTC, same calendar day",
			time.Date(2026, time.June, 10, 8, 0, 0, 0, time.FixedZone("UTC+8", 8*60*60)),
			0,
		},
		{
			"just after local midnight east of UTC",
			time.Date(2026, time.June, 10, 0, 30, 0, 0, time.FixedZone("UTC+8", 8*60*60)),
			0,
		},
		{
			"evening west of UTC, same calendar day",
			time.Date(2026, time.June, 10, 21, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60)),
			0,
		},
		{
			"five days out on an eastern clock",
			time.Date(2026, time.June, 5, 23, 0, 0, 0, time.FixedZone("UTC+12", 12*60*60)),
			5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.asOf, target))
		})
	}
}

func TestEvaluateSameDayOnEasternClock(t *testing.T) {
	sgt := time.FixedZone("UTC+8", 8*60*60)
	asOf := time.Date(2026, time.June, 10, 8, 0, 0, 0, sgt)
	annv := models.Anniversary{Title: "Wedding", Date: date(2026, time.June, 10), ReminderDays: 10}

	eval := Evaluate(asOf, annv)
	assert.Equal(t, 0, eval.DaysUntil)
	assert.True(t, eval.IsToday)
	assert.True(t, eval.Due)
}

func TestEvaluate(t *testing.T) {
	asOf := date(2026, time.June, 10)

	tests := []struct {
		name string
		annv models.Anniversary
		want models.Evaluation
	}{
		{
			name: "advance reminder hits on lead day",
			annv: models.Anniversary{Title: "Wedding", Date: asOf.AddDate(0, 0, 5), ReminderDays: 5},
			want: models.Evaluation{Due: true, IsToday: false, DaysUntil: 5},
		},
		{
			name: "same day is due regardless of lead",
			annv: models.Anniversary{Date: asOf, ReminderDays: 10},
			want: models.Evaluation{Due: true, IsToday: true, DaysUntil: 0},
		},
		{
			name: "not due outside lead day",
			annv: models.Anniversary{Date: asOf.AddDate(0, 0, 9), ReminderDays: 5},
			want: models.Evaluation{Due: false, IsToday: false, DaysUntil: 9},
		},
		{
			name: "past anniversary never due",
			annv: models.Anniversary{Date: asOf.AddDate(0, 0, -1), ReminderDays: 5},
			want: models.Evaluation{Due: false, IsToday: false, DaysUntil: -1},
		},
		{
			name: "zero lead means same-day only",
			annv: models.Anniversary{Date: asOf.AddDate(0, 0, 3), ReminderDays: 0},
			want: models.Evaluation{Due: false, IsToday: false, DaysUntil: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(asOf, tt.annv))
		})
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	asOf := date(2026, time.June, 10)
	annv := models.Anniversary{Date: asOf.AddDate(0, 0, 5), ReminderDays: 5}

	first := Evaluate(asOf, annv)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(asOf, annv))
	}
}

func TestEvaluateWindow(t *testing.T) {
	asOf := date(2026, time.June, 10)

	t.Run("hit inside window", func(t *testing.T) {
		// Lead-day match occurs at offset 2.
		annv := models.Anniversary{Date: asOf.AddDate(0, 0, 7), ReminderDays: 5}
		eval, ok := EvaluateWindow(asOf, annv, TestWindowDays)
		assert.True(t, ok)
		assert.Equal(t, 5, eval.DaysUntil)
		assert.False(t, eval.IsToday)
	})

	t.Run("same-day hit at window start", func(t *testing.T) {
		annv := models.Anniversary{Date: asOf, ReminderDays: 30}
		eval, ok := EvaluateWindow(asOf, annv, TestWindowDays)
		assert.True(t, ok)
		assert.True(t, eval.IsToday)
	})

	t.Run("no hit beyond window", func(t *testing.T) {
		annv := models.Anniversary{Date: asOf.AddDate(0, 0, 30), ReminderDays: 5}
		_, ok := EvaluateWindow(asOf, annv, TestWindowDays)
		assert.False(t, ok)
	})
}
