package domain

import "errors"

var (
	// ErrUserExists is returned when a registration collides with an existing email.
	ErrUserExists = errors.New("User already exists")
	// ErrEmailTaken is returned when a profile update targets an email owned by another user.
	ErrEmailTaken = errors.New("Email already exists")
	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("User not found")
	// ErrInvalidCredentials is returned when a password check fails.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrPasswordRequired is returned when a password change omits the current password.
	ErrPasswordRequired = errors.New("Current password is required to change password")
	// ErrInvalidToken is returned for malformed, tampered, or expired bearer tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTransactionNotFound covers both a missing transaction and one owned by
	// another user, so the API never reveals whether a foreign id exists.
	ErrTransactionNotFound = errors.New("Transaction not found")
	// ErrInvalidTransaction is returned for an unknown type or payment method.
	ErrInvalidTransaction = errors.New("Invalid transaction")
)
