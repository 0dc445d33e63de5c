package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID = errors.New("invalid name entry id")
)

// Name validation failures. Each is returned as-is (never wrapped) by
// [Validate] so callers can both match it with [errors.Is] and show its
// message to the user.
var (
	// ErrEmptyName is returned when nothing is left after sanitization.
	ErrEmptyName = errors.New("name is required")

	// ErrDangerousContent is returned when the original input matches one
	// of the deny-listed markup or script patterns.
	ErrDangerousContent = errors.New("content is not allowed")

	// ErrInvalidCharacters is returned when the sanitized name contains
	// anything other than letters, Spanish accented vowels, ñ/Ñ or spaces.
	ErrInvalidCharacters = errors.New("only letters and spaces are allowed")

	// ErrTooShort is returned when the sanitized name is shorter than
	// [MinNameLength] characters.
	ErrTooShort = errors.New("name must be at least 5 characters long")
)

// IsValidationError reports whether err is one of the name validation
// failures.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrDangerousContent) ||
		errors.Is(err, ErrInvalidCharacters) ||
		errors.Is(err, ErrTooShort)
}
