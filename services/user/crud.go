package user

import (
	"fmt"

	"evermore/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user profile with the password projected out.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", id)
	}
	return usr, nil
}

// GetAllUsers lists every user with passwords projected out.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAllWithProjection(bson.M{"passwordHash": 0})
}

// DeleteUser removes a user record.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}
