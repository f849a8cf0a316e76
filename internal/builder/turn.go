package builder

import (
	"github.com/dshills/strokemark/internal/gcode/word"
)

// splitTurn splits a selection into XZ strokes. A rapid move carrying X
// or Z is the only boundary; it closes the open stroke and becomes the
// next stroke's lead-in. A stroke opens on the first feed or arc move with
// X or Z and collects every following feed or arc X/Z move.
func (b *Builder) splitTurn(lines []string) analysis {
	var (
		a     analysis
		mode  word.Motion
		st    stroke
		rapid string
	)
	flush := func() {
		if st.open && len(st.cuts) > 0 {
			c := make([]string, 0, len(st.leads)+len(st.cuts))
			c = append(c, st.leads...)
			c = append(c, st.cuts...)
			a.candidates = append(a.candidates, candidate{lines: c})
		}
		st = stroke{}
	}

	for _, line := range lines {
		code, kept := codeOf(line)
		if m, ok := word.MotionOf(code); ok {
			mode = m
		}
		hasXZ := word.HasAnyAxis(code, 'X', 'Z')
		if hasXZ {
			a.hasTokens = true
		}

		switch {
		case mode == word.MotionRapid && hasXZ:
			if st.open {
				flush()
			}
			rapid = kept

		case mode.IsCut() && hasXZ:
			if !st.open {
				st.open = true
				if rapid != "" {
					st.leads = append(st.leads, rapid)
				}
				rapid = ""
			}
			st.addCut(kept)
		}
	}
	flush()

	return a
}
