// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated identity in the ExpenseFlow system.
// All expenses and budgets are scoped to exactly one user.
type User struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	TermsAcceptedAt time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewUser creates a new User entity.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	return &User{
		ID:              uuid.New(),
		Email:           email,
		Name:            name,
		PasswordHash:    passwordHash,
		TermsAcceptedAt: termsAcceptedAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
