package user

import "errors"

// ErrRegistrationLocked signals that registration is refused because a user
// already exists and the caller is not an admin.
var ErrRegistrationLocked = errors.New("registration is closed; ask an admin to add you")

// ErrInvalidCredentials signals a failed login. Deliberately does not say
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DuplicateEmailError signals that the email is already registered.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "a user with email " + e.Email + " already exists"
}
