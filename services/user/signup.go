package user

import (
	"fmt"
	"strings"
	"time"

	"evermore/config"
	"evermore/models"
	"evermore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the request, enforces the registration lock, hashes the
// password and persists the user. The first user ever created is granted
// admin; the count check and the unique email index together keep the
// bootstrap race from minting two admins.
func (s *DefaultUserService) Register(name, email, password string, callerIsAdmin bool) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	count, err := s.Repo.Count()
	if err != nil {
		utils.GetLogger().Error("Register: user count failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if count > 0 && !callerIsAdmin {
		return nil, ErrRegistrationLocked
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: email}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      count == 0,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to persist user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.IsAdmin,
		time.Duration(config.AppConfig.JWTExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	userObj.PasswordHash = ""
	return &AuthResponse{Token: token, User: userObj}, nil
}
