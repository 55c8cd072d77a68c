package core

import (
	"strings"
	"time"
)

// User represents an account in the durable context.
//
// This is the "identity" - who someone is. The password hash lives on the
// user directly; there is a single credential per account.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Phone        *string    `json:"phone,omitempty"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Avatar       *string    `json:"avatar,omitempty"`
	PasswordHash string     `json:"-"` // Never expose in JSON
	IsVerified   bool       `json:"isVerified"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FullName returns the display name: first and last name joined, falling
// back to the username when both are empty.
func (u *User) FullName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// CreateUserInput contains the data needed to register a new user.
// Password and PasswordConfirm are write-only and never stored as-is.
type CreateUserInput struct {
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Password        string     `json:"password"`
	PasswordConfirm string     `json:"passwordConfirm"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Phone           *string    `json:"phone,omitempty"`
	BirthDate       *time.Time `json:"birthDate,omitempty"`
	Bio             string     `json:"bio,omitempty"`
}

// UpdateUserInput carries profile fields only. Identity, password and the
// verified/active flags are not reachable through the update path. Nil
// fields are left unchanged, so the same shape serves PUT and PATCH.
type UpdateUserInput struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	Avatar    *string    `json:"avatar,omitempty"`
}
