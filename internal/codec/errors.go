package codec

import "errors"

// Validation errors. They are returned before any storage operation runs.
var (
	// ErrInvalidDate is returned when a supplied date is not a valid
	// YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrMissingRangeStart is returned when a "to" date is given without a
	// "from" date.
	ErrMissingRangeStart = errors.New("please select a From date before a To date")

	// ErrInvertedRange is returned when "to" is before "from".
	ErrInvertedRange = errors.New("To date cannot be before From date")

	// ErrUnsupportedKey is returned by the strict edition for input that
	// cannot be represented as a single date (ranges or free text).
	ErrUnsupportedKey = errors.New("only a single date can name a note")

	// ErrUnknownVariant is returned by New for an unrecognised edition name.
	ErrUnknownVariant = errors.New("unknown notes variant")
)
