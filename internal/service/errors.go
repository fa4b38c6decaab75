package service

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrConflict           = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
)
