package user

import "evermore/models"

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines the business operations for users and auth.
type UserService interface {
	// Register creates a new user. The first user ever created becomes
	// admin; after that, registration requires an admin caller.
	Register(name, email, password string, callerIsAdmin bool) (*AuthResponse, error)

	// Authenticate verifies credentials and mints a session token.
	Authenticate(email, password string) (*AuthResponse, error)

	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	DeleteUser(id string) error
}
