package util

import "errors"

// Sentinel errors for common failure modes
var (
	// ErrDuplicateUser indicates a user name is already taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateMovie indicates a title is already in the user's collection
	ErrDuplicateMovie = errors.New("movie already in collection")

	// ErrLookupFailed indicates the metadata provider returned no result
	ErrLookupFailed = errors.New("metadata lookup failed")

	// ErrNoMatch indicates no candidate title scored above the confidence threshold
	ErrNoMatch = errors.New("no close match found")

	// ErrEmptyCollection indicates the user holds no movies to operate on
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrInvalidRating indicates a rating outside the 0.0-10.0 range
	ErrInvalidRating = errors.New("rating must be between 0.0 and 10.0")

	// ErrUnknownUser indicates a user name with no profile
	ErrUnknownUser = errors.New("unknown user")
)
