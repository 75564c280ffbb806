package anniversary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	anniversaryRepo "evermore/database/repository/anniversary"
	"evermore/models"

	"github.com/google/uuid"
)

// ErrDuplicateTitle signals that an anniversary with the same title exists.
var ErrDuplicateTitle = errors.New("an anniversary with this title already exists")

// ErrNotFound signals an unknown anniversary id.
var ErrNotFound = errors.New("anniversary not found")

// Ensure DefaultAnniversaryService implements AnniversaryService
var _ AnniversaryService = (*DefaultAnniversaryService)(nil)

// DefaultAnniversaryService implements AnniversaryService over the
// anniversary repository.
type DefaultAnniversaryService struct {
	Repo anniversaryRepo.AnniversaryRepository
}

// normalizeDate strips the time-of-day; only the calendar date is meaningful.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validate(in *CreateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}
	if in.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if in.ReminderDays < 0 {
		return fmt.Errorf("reminderDays must not be negative")
	}
	return nil
}

// Create persists a new anniversary, rejecting duplicate titles.
func (s *DefaultAnniversaryService) Create(in CreateInput) (*models.Anniversary, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByTitle(in.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to check title: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateTitle
	}

	annv := models.Anniversary{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Date:         normalizeDate(in.Date),
		ReminderDays: in.ReminderDays,
	}
	if err := s.Repo.Create(&annv); err != nil {
		return nil, err
	}
	return &annv, nil
}

// Update mutates title, date and reminder lead of an existing anniversary.
func (s *DefaultAnniversaryService) Update(id string, in CreateInput) (*models.Anniversary, error) {
	if err := validate(&in); err != nil {
		return nil, err
	}

	annv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if annv == nil {
		return nil, ErrNotFound
	}

	if in.Title != annv.Title {
		existing, err := s.Repo.GetByTitle(in.Title)
		if err != nil {
			return nil, fmt.Errorf("failed to check title: %w", err)
		}
		if existing != nil {
			return nil, ErrDuplicateTitle
		}
	}

	annv.Title = in.Title
	annv.Date = normalizeDate(in.Date)
	annv.ReminderDays = in.ReminderDays
	if err := s.Repo.Update(annv); err != nil {
		return nil, err
	}
	return annv, nil
}

// Delete removes an anniversary. Hard delete, no retention.
func (s *DefaultAnniversaryService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetByID fetches one anniversary.
func (s *DefaultAnniversaryService) GetByID(id string) (*models.Anniversary, error) {
	annv, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if annv == nil {
		return nil, ErrNotFound
	}
	return annv, nil
}

// GetAll lists every anniversary sorted by date.
func (s *DefaultAnniversaryService) GetAll() ([]models.Anniversary, error) {
	return s.Repo.GetAll()
}
