package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Roster errors
var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrTooManyCoaches = errors.New("team cannot have more than 3 coaches")
)

// Attendance errors
var (
	ErrPartialUnconfirmed = errors.New("partial attendance batch requires confirmation")
	ErrEmptyBatch         = errors.New("attendance batch is empty")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
