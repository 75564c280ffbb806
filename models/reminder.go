// models/reminder.go
package models

// Evaluation is the due-ness decision for one anniversary against one
// reference date.
type Evaluation struct {
	Due       bool `json:"due"`
	IsToday   bool `json:"isToday"`
	DaysUntil int  `json:"daysUntil"`
}

// SendError records one failed delivery within a dispatch batch.
type SendError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// DispatchReport is the outcome of one dispatch batch (one anniversary
// against the full recipient list). Successful+Failed always equals the
// recipient count. It lives for one run only and is never persisted.
type DispatchReport struct {
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Errors     []SendError `json:"errors"`
}

// DailyRunReport aggregates a daily automatic reminder run.
type DailyRunReport struct {
	AnniversariesChecked   int    `json:"anniversariesChecked"`
	AnniversariesTriggered int    `json:"anniversariesTriggered"`
	UsersNotified          int    `json:"usersNotified"`
	TotalSent              int    `json:"totalSent"`
	TotalFailed            int    `json:"totalFailed"`
	Message                string `json:"message,omitempty"`
}

// TestRunReport aggregates a test-window run across the 8-day lookahead.
type TestRunReport struct {
	Sent                int      `json:"sent"`
	Failed              int      `json:"failed"`
	TestedAnniversaries int      `json:"testedAnniversaries"`
	FailedAnniversaries []string `json:"failedAnniversaries"`
	Message             string   `json:"message,omitempty"`
}
