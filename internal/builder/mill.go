package builder

import (
	"math"

	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/word"
)

// zEpsilon is the tolerance for comparing a Z value with the mill plane.
const zEpsilon = 1e-9

// lowestZ returns the lowest parsable Z value in lines.
func lowestZ(lines []string) (float64, bool) {
	lowest, found := math.Inf(1), false
	for _, line := range lines {
		code, _ := codeOf(line)
		if z, ok := word.Value(code, 'Z'); ok && z < lowest {
			lowest, found = z, true
		}
	}
	return lowest, found
}

func onPlane(z, plane float64) bool {
	return math.Abs(z-plane) < zEpsilon
}

// splitMill splits a selection into XY strokes at the lowest Z plane.
//
// A rapid move carrying X or Y is a boundary: it closes the open stroke
// and is remembered as the next stroke's lead-in. A feed move at the plane
// without X/Y is remembered as a plunge. A stroke opens on the first
// feed or arc move with X/Y whose Z is absent or on the plane; after that
// every feed or arc X/Y move is appended.
func (b *Builder) splitMill(lines []string) analysis {
	var a analysis

	plane, ok := lowestZ(lines)
	if !ok {
		return a
	}
	a.hasTokens = true
	planeLine := "Z" + word.Format(plane)

	var (
		mode   word.Motion
		st     stroke
		rapid  string
		plunge string
	)
	flush := func() {
		if st.open && len(st.cuts) > 0 {
			c := make([]string, 0, 1+len(st.leads)+len(st.cuts))
			c = append(c, planeLine)
			c = append(c, st.leads...)
			c = append(c, st.cuts...)
			a.candidates = append(a.candidates, candidate{
				lines: c,
				meta:  map[string]string{"Plane": word.Format(plane)},
			})
		}
		st = stroke{}
	}

	for _, line := range lines {
		code, kept := codeOf(line)
		if m, ok := word.MotionOf(code); ok {
			mode = m
		}
		hasXY := word.HasAnyAxis(code, 'X', 'Y')
		z, hasZ := word.Value(code, 'Z')

		switch {
		case mode == word.MotionRapid && hasXY:
			if st.open {
				flush()
			}
			rapid, plunge = kept, ""

		case mode == word.MotionFeed && !hasXY && hasZ && onPlane(z, plane):
			if !st.open {
				plunge = kept
			}

		case mode.IsCut() && hasXY:
			if !st.open {
				if hasZ && !onPlane(z, plane) {
					b.logger.Debug("mill move off plane ignored",
						zap.String("line", kept), zap.Float64("plane", plane))
					continue
				}
				st.open = true
				for _, lead := range []string{rapid, plunge} {
					if lead != "" {
						st.leads = append(st.leads, lead)
					}
				}
				rapid, plunge = "", ""
			}
			st.addCut(kept)
		}
	}
	flush()

	return a
}
