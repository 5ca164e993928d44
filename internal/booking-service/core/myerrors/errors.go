package myerrors

import "errors"

// Validation errors. Rejected at the boundary, before any store mutation.
var (
	ErrFieldIsEmpty         = errors.New("field is empty")
	ErrInvalidLocation      = errors.New("invalid location coordinates")
	ErrInvalidVehicleClass  = errors.New("unknown vehicle class")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidUsername      = errors.New("username must be at least 3 characters, letters and spaces only")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPassword      = errors.New("unknown password")
	ErrPasswordTooShort     = errors.New("password must be at least 5 characters")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidCard          = errors.New("invalid card details")
	ErrInvalidPointCount    = errors.New("route curve needs at least 2 points")
)

// Conflict errors: duplicate records and invalid state transitions.
var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidTransition   = errors.New("invalid booking state transition")
	ErrNoPendingBooking    = errors.New("no booking awaiting payment")
	ErrOperationInProgress = errors.New("another operation is in progress for this booking flow")
)

// Not-found errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrCardNotFound    = errors.New("payment card not found")
)
