package builder

import "errors"

// Errors returned by builders. Every failure is reported before any block
// or region is produced.
var (
	// ErrEmptySelection indicates the selected text is empty.
	ErrEmptySelection = errors.New("selection is empty")

	// ErrEmptyName indicates no base name was given.
	ErrEmptyName = errors.New("base name is empty")

	// ErrNoUsableLines indicates the selection has no non-blank lines.
	ErrNoUsableLines = errors.New("selection has no usable lines")

	// ErrNoAxisTokens indicates the selection has none of the axis or
	// cycle words the domain needs.
	ErrNoAxisTokens = errors.New("no axis tokens found")

	// ErrNoRegions indicates analysis found no region with real content.
	ErrNoRegions = errors.New("no regions found")
)
