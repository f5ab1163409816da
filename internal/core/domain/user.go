package domain

import (
	"errors"
	"time"
)

var ErrValidation = errors.New("missing required fields")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid or expired token")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. Only the bcrypt hash of the password is
// ever stored; the hash never leaves the process in JSON responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// Avatar is the relative path of the uploaded image (e.g.
	// "/uploads/<id>-<ms>.png"), empty when none was uploaded. Absolute URLs
	// are composed per request so the public base can change freely.
	Avatar    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
