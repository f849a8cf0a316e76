package cleanup

import "errors"

// ErrDomain is the oops domain of cleanup errors.
const ErrDomain = "cleanup"

// Errors returned by the cleanup engine.
var (
	// ErrMissingLines indicates a region, or its line container, is
	// missing. It is a contract breach by the region's owner and aborts the
	// whole rebuild before anything is modified.
	ErrMissingLines = errors.New("region line container missing")

	// ErrNilStore indicates Rebuild was called without a store.
	ErrNilStore = errors.New("region store is nil")
)
