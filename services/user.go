package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pverales/rosterd/core"
	"github.com/pverales/rosterd/pkg/crypto"
)

// UserService owns the user resource lifecycle: CRUD, verification and
// credential checks. Every operation except Create and Authenticate
// requires an authenticated caller, passed in explicitly as a session.
type UserService struct {
	db     core.UserStorage
	hasher crypto.PasswordHandler
	log    *zap.Logger
}

func NewUserService(db core.UserStorage, hasher crypto.PasswordHandler, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		db:     db,
		hasher: hasher,
		log:    log,
	}
}

// List returns all users, newest first.
func (s *UserService) List(caller *core.Session) ([]*core.User, error) {
	if caller == nil {
		return nil, core.ErrUnauthorized
	}
	return s.db.ListUsers()
}

// Get returns a single user by id.
func (s *UserService) Get(caller *core.Session, id int64) (*core.User, error) {
	if caller == nil {
		return nil, core.ErrUnauthorized
	}
	return s.db.GetUserByID(id)
}

// Create registers a new user. Open to anonymous callers.
//
// The payload is validated as a whole, the password is hashed before it
// goes anywhere near storage, and the storage layer assigns id and
// timestamps.
func (s *UserService) Create(input core.CreateUserInput) (*core.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &core.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		BirthDate:    input.BirthDate,
		Bio:          input.Bio,
		PasswordHash: hashed,
		IsVerified:   false,
		IsActive:     true,
	}

	if err := s.db.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Info("user created",
		zap.Int64("id", user.ID),
		zap.String("username", user.Username))

	return user, nil
}

// Update applies profile fields only. Identity, password and flags are not
// reachable through this path; created_at is never touched and updated_at
// always advances.
func (s *UserService) Update(caller *core.Session, id int64, input core.UpdateUserInput) (*core.User, error) {
	if caller == nil {
		return nil, core.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.db.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.db.UpdateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user and reports the removed username for the
// confirmation message.
func (s *UserService) Delete(caller *core.Session, id int64) (string, error) {
	if caller == nil {
		return "", core.ErrUnauthorized
	}

	user, err := s.db.GetUserByID(id)
	if err != nil {
		return "", err
	}

	if err := s.db.DeleteUser(id); err != nil {
		return "", err
	}

	s.log.Info("user deleted",
		zap.Int64("id", id),
		zap.String("username", user.Username))

	return user.Username, nil
}

// Verify flips is_verified to true. Idempotent: verifying an already
// verified user succeeds with no change.
func (s *UserService) Verify(caller *core.Session, id int64) (*core.User, error) {
	if caller == nil {
		return nil, core.ErrUnauthorized
	}

	user, err := s.db.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.UpdatedAt = time.Now()

	if err := s.db.UpdateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks a username/password pair against the stored hash and
// returns the matching user. It does not create a session; that is the
// transport's concern.
func (s *UserService) Authenticate(username, password string) (*core.User, error) {
	if username == "" || password == "" {
		return nil, core.ErrMissingCredentials
	}

	user, err := s.db.GetUserByUsername(username)
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	return user, nil
}

// Whoami returns the caller's own record.
func (s *UserService) Whoami(caller *core.Session) (*core.User, error) {
	if caller == nil {
		return nil, core.ErrUnauthorized
	}
	return s.db.GetUserByID(caller.UserID)
}
