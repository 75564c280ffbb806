package memory

import (
	"io"
	"time"

	"evermore/models"
)

// CreateInput carries the mutable memory fields.
type CreateInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// MemoryService defines business operations for photo journal entries.
// Mutation is restricted to the owning user or an admin.
type MemoryService interface {
	Create(userID string, in CreateInput) (*models.Memory, error)
	Update(id, callerID string, callerIsAdmin bool, in CreateInput) (*models.Memory, error)
	Delete(id, callerID string, callerIsAdmin bool) error
	GetByID(id string) (*models.Memory, error)
	GetAll() ([]models.Memory, error)

	AttachImage(id, callerID string, callerIsAdmin bool, filename string, r io.Reader) (*models.MemoryImage, error)
	RemoveImage(id, fileID, callerID string, callerIsAdmin bool) error
}
