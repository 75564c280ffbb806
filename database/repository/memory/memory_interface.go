package memoryRepo

import "evermore/models"

// MemoryRepository defines persistence operations for photo journal entries.
type MemoryRepository interface {
	Create(mem *models.Memory) error
	Update(mem *models.Memory) error
	Delete(id string) error

	GetByID(id string) (*models.Memory, error)
	GetAll() ([]models.Memory, error)

	AddImage(id string, image models.MemoryImage) error
	RemoveImage(id string, fileID string) error
}
