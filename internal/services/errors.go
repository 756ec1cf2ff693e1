package services

import "errors"

var (
	// user errors
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrNoUsers            = errors.New("no users registered")
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingPassword    = errors.New("password is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")

	// errand errors
	ErrTitleRequired  = errors.New("title is required")
	ErrErrandNotFound = errors.New("errand not found")
)
