package errs

import (
	"errors"
)

var (
	ErrDeviceNotFound  = errors.New("default device not found")
	ErrAddressNotFound = errors.New("address not found")
)

var (
	ErrCommandFailed = errors.New("command failed")
)

var (
	ErrInvalidPassword = errors.New("invalid password")
)
