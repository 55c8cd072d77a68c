package core

import "time"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// UserStorage defines user-related database operations.
// Uniqueness of username and email is enforced here and surfaced as
// ErrUsernameTaken / ErrEmailTaken.
type UserStorage interface {
	CreateUser(u *User) error
	GetUserByID(id int64) (*User, error)
	GetUserByUsername(username string) (*User, error)
	ListUsers() ([]*User, error)
	UpdateUser(u *User) error
	DeleteUser(id int64) error
}

// SessionStorage defines session-related database operations
type SessionStorage interface {
	CreateSession(s *Session) error
	GetSessionByHash(tokenHash string) (*Session, error)
	DeleteSessionByHash(tokenHash string) error
	DeleteExpiredSessions() (int, error)
}

type StorageAdapter interface {
	UserStorage
	SessionStorage
}

// ============================================
// CACHE PORT
// ============================================

// Cache defines session caching operations
type Cache interface {
	Get(tokenHash string) (*Session, error)
	Set(tokenHash string, session *Session) error
	Delete(tokenHash string) error
	Clear() error
}

// CacheWithStats extends Cache with statistics tracking
type CacheWithStats interface {
	Cache
	Stats() CacheStats
}

// CacheConfig configures cache behavior
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// CacheStats tracks cache performance metrics
type CacheStats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}
