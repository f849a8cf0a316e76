package address

import (
	"strings"

	"github.com/google/uuid"
)

// NewUID returns a fresh region identifier suitable for an anchor.
func NewUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
