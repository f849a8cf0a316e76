package region

import "errors"

// Errors returned by region operations.
var (
	// ErrEmptyName indicates a region was registered without a name.
	ErrEmptyName = errors.New("region name is empty")

	// ErrKindMismatch indicates a region was added to another kind's collection.
	ErrKindMismatch = errors.New("region kind does not match collection")

	// ErrUnknownKind indicates a kind name could not be parsed.
	ErrUnknownKind = errors.New("unknown region kind")
)
