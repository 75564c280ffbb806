package anniversaryRepo

import "evermore/models"

// AnniversaryRepository defines persistence operations for anniversaries.
// The reminder path only reads; mutation happens through the CRUD API.
type AnniversaryRepository interface {
	Create(annv *models.Anniversary) error
	Update(annv *models.Anniversary) error
	Delete(id string) error

	GetByID(id string) (*models.Anniversary, error)
	GetByTitle(title string) (*models.Anniversary, error)
	GetAll() ([]models.Anniversary, error)
}
