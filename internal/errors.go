package internal

import "errors"

var (
	ErrEmailIsAlreadyRegistered = errors.New("email is already registered")
	ErrUsernameIsAlreadyTaken   = errors.New("username is already taken")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidRegistration      = errors.New("invalid registration data")

	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateOrder       = errors.New("duplicate order id")
	ErrIllegalTransition    = errors.New("illegal order status transition")
	ErrUnknownAction        = errors.New("unknown order action")
	ErrCancellationDeclined = errors.New("order cancellation was not confirmed")
)
