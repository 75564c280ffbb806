package userRepo

import (
	"evermore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error

	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetAllWithProjection(projection bson.M) ([]models.User, error)

	// Count returns the total number of registered users. Used for the
	// bootstrap-admin rule and the registration lock.
	Count() (int64, error)

	// ListRecipients projects every user down to (name, email) pairs for
	// the notification path.
	ListRecipients() ([]models.Recipient, error)
}
