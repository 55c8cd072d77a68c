package services

import (
	"sort"
	"sync"
	"time"

	"github.com/pverales/rosterd/core"
)

// FakeStorage is a test-only fake implementing core.StorageAdapter.
// It stores records in maps and exposes error fields for behavior injection.
type FakeStorage struct {
	mu       sync.RWMutex
	users    map[int64]*core.User
	sessions map[string]*core.Session
	nextID   int64

	createErr error
	getErr    error
	updateErr error
	deleteErr error
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:    make(map[int64]*core.User),
		sessions: make(map[string]*core.Session),
	}
}

// UserStorage methods

func (f *FakeStorage) CreateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	for _, existing := range f.users {
		if existing.Username == u.Username {
			return core.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return core.ErrEmailTaken
		}
	}

	f.nextID++
	u.ID = f.nextID
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *FakeStorage) GetUserByID(id int64) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *FakeStorage) GetUserByUsername(username string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) ListUsers() ([]*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*core.User, 0, len(f.users))
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *FakeStorage) UpdateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	stored, ok := f.users[u.ID]
	if !ok {
		return core.ErrUserNotFound
	}
	// Profile and flag fields only; identity and audit creation stay put.
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	stored.Phone = u.Phone
	stored.BirthDate = u.BirthDate
	stored.Bio = u.Bio
	stored.Avatar = u.Avatar
	stored.IsVerified = u.IsVerified
	stored.IsActive = u.IsActive
	stored.UpdatedAt = time.Now()
	u.UpdatedAt = stored.UpdatedAt
	return nil
}

func (f *FakeStorage) DeleteUser(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return core.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

// SessionStorage methods

func (f *FakeStorage) CreateSession(s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *FakeStorage) GetSessionByHash(tokenHash string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

func (f *FakeStorage) DeleteSessionByHash(tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.sessions[tokenHash]; !ok {
		return core.ErrSessionNotFound
	}
	delete(f.sessions, tokenHash)
	return nil
}

func (f *FakeStorage) DeleteExpiredSessions() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	now := time.Now()
	for k, s := range f.sessions {
		if now.After(s.ExpiresAt) {
			delete(f.sessions, k)
			count++
		}
	}
	return count, nil
}

var _ core.StorageAdapter = (*FakeStorage)(nil)
