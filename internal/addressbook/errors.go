package addressbook

import "errors"

// Sentinel errors returned by the address book and its value types.
// Callers classify them with errors.Is; all of them are recoverable
// and surfaced to the user rather than terminating the program.
var (
	// ErrInvalidPhone is returned when a phone number is not a string
	// of exactly 10 digits.
	ErrInvalidPhone = errors.New("phone number must be a string of 10 digits")

	// ErrInvalidBirthday is returned when a birthday string does not
	// parse as a valid DD.MM.YYYY calendar date.
	ErrInvalidBirthday = errors.New("birthday must be in format DD.MM.YYYY")

	// ErrEmptyName is returned when a record is created with an empty
	// or whitespace-only name.
	ErrEmptyName = errors.New("contact name must not be empty")

	// ErrNotFound is returned when a name or phone number referenced
	// by an operation is not present.
	ErrNotFound = errors.New("not found")
)
