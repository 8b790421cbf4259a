package domain

import "errors"

// User errors
var (
	ErrInvalidUsername    = errors.New("invalid username: must start with a letter and be at least 4 characters of letters, digits or underscores")
	ErrInvalidPassword    = errors.New("invalid password: must be at least 5 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Incident errors
var (
	ErrIncidentNotFound = errors.New("incident record not found")
	ErrInvalidLocation  = errors.New("invalid location: expected 'lat,long' within valid ranges (+/-90, +/-180)")
	ErrInvalidComment   = errors.New("invalid comment: should not be empty or blank")
	ErrInvalidStatus    = errors.New("invalid status: must be one of 'resolved', 'unresolved' or 'under investigation'")
	ErrInvalidField     = errors.New("invalid field name")
)
