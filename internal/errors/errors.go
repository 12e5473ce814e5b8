package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrTokenMissing is returned when no token accompanies a protected request.
	ErrTokenMissing = errors.New("Token is missing!")
	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("Token has expired!")
	// ErrTokenInvalid is returned when a token fails signature or structure checks.
	ErrTokenInvalid = errors.New("Invalid token!")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrAccountDeactivated is returned when a deactivated account tries to authenticate.
	ErrAccountDeactivated = errors.New("Account is deactivated")
	// ErrAdminRequired is returned when a non-admin calls an admin operation.
	ErrAdminRequired = errors.New("Admin access required!")
	// ErrForbidden is returned on ownership or role violations inside handlers.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateFavorite is returned when a (user, property) favorite already exists.
	ErrDuplicateFavorite = errors.New("Property is already in favorites")
	// ErrDuplicateReview is returned when a user already reviewed a property.
	ErrDuplicateReview = errors.New("You have already reviewed this property")
	// ErrSlotConflict is returned when a confirmed appointment occupies the slot.
	ErrSlotConflict = errors.New("This time slot is already booked for the property")
	// ErrInvalidTransition is returned on an illegal status change.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError carries a field-level validation failure message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError.
func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError is a NotFound with an entity-specific message.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string        { return e.Message }
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound creates a NotFound error with the given message.
func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// ForbiddenError is a Forbidden with an operation-specific message.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string        { return e.Message }
func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

// NewForbidden creates a Forbidden error with the given message.
func NewForbidden(message string) error {
	return &ForbiddenError{Message: message}
}

// TransitionError is an InvalidTransition with a rule-specific message.
type TransitionError struct {
	Message string
}

func (e *TransitionError) Error() string        { return e.Message }
func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// NewInvalidTransition creates an InvalidTransition error with the given message.
func NewInvalidTransition(message string) error {
	return &TransitionError{Message: message}
}

// StatusFor maps a domain error to its HTTP status code. Unknown errors are
// treated as internal failures.
func StatusFor(err error) int {
	switch {
	case IsValidation(err), errors.Is(err, ErrDuplicateFavorite),
		errors.Is(err, ErrDuplicateReview), errors.Is(err, ErrSlotConflict),
		errors.Is(err, ErrInvalidTransition):
		return http.StatusBadRequest
	case errors.Is(err, ErrTokenMissing), errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountDeactivated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAdminRequired), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
