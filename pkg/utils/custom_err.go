package utils

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrUpstreamError      = errors.New("upstream provider error")
	ErrNotConfigured      = errors.New("credentials not configured")
)
