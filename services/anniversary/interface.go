package anniversary

import (
	"time"

	"evermore/models"
)

// CreateInput carries the mutable anniversary fields.
type CreateInput struct {
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	ReminderDays int       `json:"reminderDays"`
}

// AnniversaryService defines business operations for anniversaries.
// Anniversaries are not owned: any authenticated user may mutate any record.
type AnniversaryService interface {
	Create(in CreateInput) (*models.Anniversary, error)
	Update(id string, in CreateInput) (*models.Anniversary, error)
	Delete(id string) error
	GetByID(id string) (*models.Anniversary, error)
	GetAll() ([]models.Anniversary, error)
}
