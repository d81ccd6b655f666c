package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Field validation errors
	ErrInvalidName     = fmt.Errorf("contact name must not be empty")
	ErrInvalidPhone    = fmt.Errorf("invalid phone number format")
	ErrInvalidBirthday = fmt.Errorf("invalid birthday format, expected YYYY-MM-DD")

	// Lookup errors
	ErrContactNotFound = fmt.Errorf("contact not found")
	ErrPhoneNotFound   = fmt.Errorf("phone does not exist in the record")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
