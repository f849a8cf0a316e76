package region

import (
	"strings"

	"github.com/dshills/strokemark/internal/gcode/address"
)

// Region is one named, addressable sub-sequence of G-code lines.
type Region struct {
	// Kind is the machining domain; it never changes.
	Kind Kind

	// Name is unique within the kind's collection.
	Name string

	// Lines are the anchored lines in render order.
	Lines []string

	// Snapshot maps auxiliary reference names to anchored lines. A value
	// may hold several newline-joined lines.
	Snapshot map[string]string

	// ShowInViewAll and ExportEnabled are owner flags, opaque to the core.
	ShowInViewAll bool
	ExportEnabled bool
}

// New creates an empty region of the given kind.
func New(kind Kind, name string) *Region {
	return &Region{
		Kind:          kind,
		Name:          name,
		Lines:         []string{},
		Snapshot:      make(map[string]string),
		ShowInViewAll: true,
		ExportEnabled: true,
	}
}

// StartLine returns the synthetic first line of a rendered region block.
func StartLine(name string) string {
	return "(" + name + " ST)"
}

// EndLine returns the synthetic last line of a rendered region block.
func EndLine(name string) string {
	return "(" + name + " END)"
}

// UID returns the uid of the first anchored line, or "" when no line
// carries a well-formed anchor.
func (r *Region) UID() string {
	for _, line := range r.Lines {
		if a, _, ok := address.ParseAnchor(line); ok {
			return a.UID
		}
	}
	return ""
}

// Text returns the lines joined with newlines.
func (r *Region) Text() string {
	return strings.Join(r.Lines, "\n")
}

// SetSnapshot stores a snapshot value, allocating the map if needed.
func (r *Region) SetSnapshot(key, value string) {
	if r.Snapshot == nil {
		r.Snapshot = make(map[string]string)
	}
	r.Snapshot[key] = value
}

// SeedSnapshot stores value under key only if the key is absent.
// Returns true if the value was stored.
func (r *Region) SeedSnapshot(key, value string) bool {
	if _, exists := r.Snapshot[key]; exists {
		return false
	}
	r.SetSnapshot(key, value)
	return true
}
