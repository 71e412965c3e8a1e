package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the coarse-grained identity classification driving permission grants.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleStandardUser Role = "standard_user"
)

// User models an authenticated actor in the system. Accounts are provisioned
// on first login through the identity provider; there is no local password.
type User struct {
	ID          uuid.UUID `json:"id" bson:"_id"`
	Username    string    `json:"username" bson:"username"`
	Email       string    `json:"email" bson:"email"`
	AvatarURL   string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	DisplayName string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	Role        Role      `json:"role" bson:"role"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// NewUser creates an active standard user, the shape every account takes when
// provisioned from a provider login. Role promotion is a separate
// administrative action.
func NewUser(username, email, avatarURL string, now time.Time) *User {
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		AvatarURL: avatarURL,
		IsActive:  true,
		Role:      RoleStandardUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
