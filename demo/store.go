// Package demo is a self-contained demonstration service: an in-memory
// user list behind the same HTTP verbs as the durable API, plus an
// outbound fan-out example. It shares no code or dataset with the durable
// context on purpose.
package demo

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("user not found")      // 404
	ErrDuplicate = errors.New("user already exists") // 400
)

// User is the demo-only account shape. It is deliberately not the durable
// core.User; the two contexts stay separate.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserInput is the creation/update payload for the demo store.
type UserInput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

// Store keeps users in an unindexed ordered slice with a monotonically
// incrementing id counter. Lookups are linear scans. The store is owned by
// the adapter instance and is NOT safe for concurrent mutation; this is a
// demo, not a production dataset.
type Store struct {
	users  []*User
	nextID int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) List() []*User {
	return s.users
}

func (s *Store) Get(id int64) (*User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Create(in UserInput) (*User, error) {
	for _, u := range s.users {
		if u.Username == in.Username || u.Email == in.Email {
			return nil, ErrDuplicate
		}
	}

	user := &User{
		ID:        s.nextID,
		Username:  in.Username,
		Email:     in.Email,
		FullName:  in.FullName,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	s.nextID++

	return user, nil
}

func (s *Store) Update(id int64, in UserInput) (*User, error) {
	for _, u := range s.users {
		if u.ID == id {
			u.Username = in.Username
			u.Email = in.Email
			u.FullName = in.FullName
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Delete(id int64) (*User, error) {
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Store) Len() int {
	return len(s.users)
}
