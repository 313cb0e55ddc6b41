package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// UserCreate - what client sends to register
type UserCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserLogin - what client sends to log in
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a registered account
type User struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"password_hash" validate:"required"`
	CreatedAt    time.Time `json:"created_at" validate:"required"`
}

// UserResponse - the public view of a User
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser fills in the ID and CreatedAt of u when they are unset and
// validates the result.
func NewUser(u User) (User, error) {
	if u.ID == "" {
		u.ID = newID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now()
	}
	if err := Validate(&u); err != nil {
		return User{}, err
	}
	return u, nil
}

// User builds the account record for a registration. passwordHash is the
// already hashed form of in.Password.
func (in UserCreate) User(passwordHash string) (User, error) {
	if err := Validate(&in); err != nil {
		return User{}, err
	}
	return NewUser(User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
	})
}

// Response projects u to the fields safe to return to clients.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// HashPassword hashes a plaintext password with bcrypt. A cost of 0 means
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
