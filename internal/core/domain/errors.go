package domain

import "errors"

var (
	ErrDateOutOfRange = errors.New("desired date is out of range")
	ErrInvalidInput   = errors.New("cannot get appointment data")
	ErrNotFound       = errors.New("appointments not found")
)
