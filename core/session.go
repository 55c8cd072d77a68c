package core

import "time"

// Session represents an active login. A session doubles as the explicit
// caller object handed to every protected service operation; handlers never
// reach into ambient request state for the current user.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionData combines user and session info.
// The model returned to clients after login.
type SessionData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}
