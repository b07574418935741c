package domain

import "errors"

var (
	// ErrValidation covers missing or malformed input the caller can fix.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidAction is returned for a status action outside the table.
	ErrInvalidAction = errors.New("invalid status action")

	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrIncompleteProfile    = errors.New("profile is incomplete")
	ErrForbidden            = errors.New("action forbidden")

	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
	// ErrJobNotVisible hides an unpublished job from callers who are neither
	// the owning employer nor a moderator. It never carries job contents.
	ErrJobNotVisible = errors.New("job not visible")
)
