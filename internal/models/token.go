package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenDB represents an issued bearer token in the database.
// A row exists from login until logout; authentication resolves the
// opaque token string to its owning user.
type AuthTokenDB struct {
	Token     string    `json:"token" db:"token"`           // Opaque token string, primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issue timestamp
}
