package user

import (
	userRepo "evermore/database/repository/user"
)

// Ensure DefaultUserService implements UserService
var _ UserService = (*DefaultUserService)(nil)

// DefaultUserService implements UserService over the user repository.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
