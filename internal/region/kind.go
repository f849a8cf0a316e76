package region

import (
	"fmt"
	"strings"

	"github.com/dshills/strokemark/internal/gcode/address"
)

// Kind is the machining domain of a region. It is fixed at creation.
type Kind int

const (
	Mill  Kind = iota // XY strokes at a fixed Z plane
	Turn              // XZ strokes
	Drill             // canned-cycle groups
)

// Kinds returns every kind in processing order.
func Kinds() []Kind {
	return []Kind{Mill, Turn, Drill}
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Mill:
		return "mill"
	case Turn:
		return "turn"
	case Drill:
		return "drill"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Letter returns the display-tag kind letter.
func (k Kind) Letter() byte {
	switch k {
	case Turn:
		return address.KindTurn
	case Drill:
		return address.KindDrill
	default:
		return address.KindMill
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= Mill && k <= Drill
}

// ParseKind parses a kind name ("mill", "turn", "drill") or its tag letter.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mill", "m":
		return Mill, nil
	case "turn", "t":
		return Turn, nil
	case "drill", "d":
		return Drill, nil
	}
	return Mill, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
