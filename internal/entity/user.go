package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account is a stored credential record.
type Account struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// User is the authenticated principal carried in request context.
type User struct {
	ID    uuid.UUID
	Login string
	Role  string
}

func (u User) String() string {
	return u.Login
}

type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
