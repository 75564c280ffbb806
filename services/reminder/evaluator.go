package reminder

import (
	"time"

	"evermore/models"
)

// DaysUntil returns the whole-day calendar distance from asOf to target.
// Anniversary dates are stored as UTC midnights, so target is read on the
// UTC calendar; asOf counts as the calendar day of its own location. Both
// days are rebuilt as UTC midnights before subtracting, which keeps the
// delta an exact multiple of 24h whatever zone the server clock runs in.
// A target before asOf yields a negative count.
func DaysUntil(asOf, target time.Time) int {
	ay, am, ad := asOf.Date()
	ty, tm, td := target.UTC().Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Evaluate decides due-ness for one anniversary against one reference date.
// It is pure: same inputs, same decision, any number of times.
//
// Due is the automatic-run rule (lead-day match, or the anniversary is
// today regardless of the configured lead). Call sites that only honor the
// lead-day match compare DaysUntil against ReminderDays themselves; the two
// rules intentionally diverge across entry points and are not unified here.
func Evaluate(asOf time.Time, a models.Anniversary) models.Evaluation {
	days := DaysUntil(asOf, a.Date)
	return models.Evaluation{
		DaysUntil: days,
		IsToday:   days == 0,
		Due:       days == a.ReminderDays || days == 0,
	}
}

// EvaluateWindow scans the next windowDays calendar days (offset 0 through
// windowDays inclusive) and returns the evaluation at the first day on which
// the anniversary comes due, or ok=false when no day in the window hits.
// Used by the manual test run to exercise the pipeline without waiting for
// a real trigger date.
func EvaluateWindow(asOf time.Time, a models.Anniversary, windowDays int) (models.Evaluation, bool) {
	for offset := 0; offset <= windowDays; offset++ {
		eval := Evaluate(asOf.AddDate(0, 0, offset), a)
		if eval.Due {
			return eval, true
		}
	}
	return models.Evaluation{}, false
}
