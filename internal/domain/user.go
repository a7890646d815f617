package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the application record of an identity-provider account.
// ID equals the identity provider's user id.
type User struct {
	ID                uuid.UUID
	Email             string
	FullName          *string
	DisplayName       *string
	AvatarURL         *string
	Role              string
	NotificationEmail bool
	NotificationWeb   bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastSignInAt      *time.Time
}

// Name returns the best human-readable name for the user.
func (u *User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Email
}

// AuthUser is the identity as seen by the identity provider.
type AuthUser struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// Session is a signed-in identity-provider session.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         AuthUser
}
