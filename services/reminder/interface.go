package reminder

import (
	"context"

	"evermore/models"
)

// SingleRunReport is the outcome of a single-anniversary force send.
type SingleRunReport struct {
	Successful      int                `json:"successful"`
	Failed          int                `json:"failed"`
	TotalRecipients int                `json:"totalRecipients"`
	Errors          []models.SendError `json:"errors"`
	Message         string             `json:"message,omitempty"`
}

// ReminderService runs the reminder pipeline end to end: load anniversaries
// and recipients, evaluate due-ness, dispatch, aggregate.
type ReminderService interface {
	// RunDaily evaluates every anniversary against today and dispatches for
	// each due one. Invoked by the periodic trigger and the cron endpoint.
	RunDaily(ctx context.Context) (*models.DailyRunReport, error)

	// SendForAnniversary dispatches for one anniversary unconditionally once
	// the id resolves; today's evaluation only picks the template.
	SendForAnniversary(ctx context.Context, id string) (*SingleRunReport, error)

	// RunTestWindow evaluates every anniversary across the next eight
	// calendar days (offsets 0 through 7) and dispatches for every hit.
	RunTestWindow(ctx context.Context) (*models.TestRunReport, error)
}
