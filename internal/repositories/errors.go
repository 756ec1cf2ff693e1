package repositories

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
