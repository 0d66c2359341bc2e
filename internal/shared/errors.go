package shared

import "errors"

var (
	// ErrNotFound indicates the target list is absent or owned by someone
	// else. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("list not found or not authorized")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation indicates missing or malformed request fields.
	ErrValidation = errors.New("validation failed")
	// ErrMissingToken occurs when the Authorization header is absent or
	// does not use the Bearer scheme.
	ErrMissingToken = errors.New("token is missing or malformed")
	// ErrTokenExpired occurs when a token's expiration has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid occurs when a token fails signature or claim checks.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrUserNotFound occurs when a verified token references an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail occurs when signing up with a registered email.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateName occurs when an owner already has a list by that name.
	ErrDuplicateName = errors.New("list name already exists")
)
