package identity

import (
	"strings"

	"github.com/heartmarshall/leadfinder-backend/internal/domain"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// SignInInput holds the credentials of a password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Validate checks that both credentials are present.
func (i SignInInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" {
		return domain.NewValidationError("credentials", "email and password are required")
	}
	return nil
}

// SignUpInput holds the parameters of an account creation.
// Next is the local path the confirmation link returns to.
type SignUpInput struct {
	Email    string
	Password string
	Next     string
}

// Validate checks the credentials and the password length.
func (i SignUpInput) Validate() error {
	if err := (SignInInput{Email: i.Email, Password: i.Password}).Validate(); err != nil {
		return err
	}
	if len([]rune(i.Password)) < MinPasswordLength {
		return domain.NewValidationError("password", "password must be at least 6 characters")
	}
	return nil
}

// PreferencesInput holds the user-editable account preferences.
// Nil fields are left unchanged.
type PreferencesInput struct {
	DisplayName       *string
	NotificationEmail *bool
	NotificationWeb   *bool
}

// Validate checks the display name length.
func (i PreferencesInput) Validate() error {
	if i.DisplayName != nil && len(strings.TrimSpace(*i.DisplayName)) > 100 {
		return domain.NewValidationError("display_name", "max 100 characters")
	}
	return nil
}
