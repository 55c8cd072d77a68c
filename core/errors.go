package core

import "errors"

// User errors
var (
	ErrUserNotFound  = errors.New("user not found")           // 404 Not Found
	ErrUsernameTaken = errors.New("username already taken")   // 400 Bad Request
	ErrEmailTaken    = errors.New("email already registered") // 400 Bad Request
)

// Credential errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")       // 401
	ErrMissingCredentials = errors.New("username and password are required") // 400
	ErrUnauthorized       = errors.New("authentication required")            // 401
)

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required")           // 400
	ErrEmailRequired    = errors.New("email is required")              // 400
	ErrInvalidEmail     = errors.New("invalid email format")           // 400
	ErrPasswordRequired = errors.New("password is required")           // 400
	ErrPasswordTooShort = errors.New("password is too short")          // 400
	ErrPasswordTooLong  = errors.New("password is too long")           // 400
	ErrPasswordMismatch = errors.New("passwords do not match")         // 400
	ErrUsernameTooLong  = errors.New("username is too long")           // 400
	ErrBioTooLong       = errors.New("bio exceeds the maximum length") // 400
	ErrPhoneTooLong     = errors.New("phone number is too long")       // 400
)

// Session errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header") // 401
	ErrInvalidToken      = errors.New("invalid session token")        // 401
	ErrSessionNotFound   = errors.New("session not found")            // 401
	ErrSessionExpired    = errors.New("session expired")              // 401
	ErrCacheNotFound     = errors.New("session not found in cache")
)
