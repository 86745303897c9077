package teacher

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("teacher not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// Teacher is the identity record announcements management is gated on.
// The username doubles as the primary key, matching how staff accounts
// are provisioned.
type Teacher struct {
	Username     string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}
