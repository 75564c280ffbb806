// models/anniversary.go
package models

import "time"

// Anniversary is a calendar date the couple wants to be reminded about, with
// a configured lead time in days. The time-of-day of Date carries no meaning;
// all comparisons normalize to midnight.
type Anniversary struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Date         time.Time `bson:"date" json:"date"`
	ReminderDays int       `bson:"reminderDays" json:"reminderDays"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
