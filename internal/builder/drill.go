package builder

import (
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/word"
)

// drillGroup is one canned cycle and the points it drills.
type drillGroup struct {
	depth  float64
	top    float64
	points [][2]float64
}

// splitDrill groups canned-cycle points.
//
// A G81..G89 line opens a group. Its depth is the line's Z (a cycle
// without Z is discarded) and its top is the line's R, else the last rapid
// Z, else 0. The first point is the cycle line's own X/Y merged with the
// modal position; when no position has been seen yet there is no first
// point. While the group is open every line with X or Y adds a point at
// the modal position. G80, any motion word or a new cycle ends the group.
func (b *Builder) splitDrill(lines []string) analysis {
	var (
		a            analysis
		mode         word.Motion
		modalX       float64
		modalY       float64
		havePosition bool
		rapidZ       float64
		haveRapidZ   bool
		open         bool
		g            drillGroup
	)
	finish := func() {
		if !open {
			return
		}
		open = false
		if len(g.points) == 0 {
			a.skipped++
			b.logger.Debug("drill group without points skipped", zap.Float64("depth", g.depth))
			return
		}
		c := make([]string, 0, 2+len(g.points))
		c = append(c, "D Z"+word.Format(g.depth), "T Z"+word.Format(g.top))
		for _, p := range g.points {
			c = append(c, "X"+word.Format(p[0])+" Y"+word.Format(p[1]))
		}
		a.candidates = append(a.candidates, candidate{
			lines: c,
			meta: map[string]string{
				"Depth":  word.Format(g.depth),
				"Top":    word.Format(g.top),
				"Points": word.Format(float64(len(g.points))),
			},
		})
	}
	addPoint := func() {
		g.points = append(g.points, [2]float64{modalX, modalY})
	}

	for _, line := range lines {
		code, kept := codeOf(line)
		cycle := word.IsCycleStart(code)
		motion, hasMotion := word.MotionOf(code)

		if open && (cycle || hasMotion || word.IsCycleCancel(code)) {
			finish()
		}
		if hasMotion {
			mode = motion
		}
		if cycle {
			mode = word.MotionNone
		}

		x, hasX := word.Value(code, 'X')
		y, hasY := word.Value(code, 'Y')
		if hasX {
			modalX, havePosition = x, true
		}
		if hasY {
			modalY, havePosition = y, true
		}
		if z, ok := word.Value(code, 'Z'); ok && mode == word.MotionRapid {
			rapidZ, haveRapidZ = z, true
		}

		switch {
		case cycle:
			a.hasTokens = true
			depth, ok := word.Value(code, 'Z')
			if !ok {
				a.skipped++
				b.logger.Debug("drill cycle without depth skipped", zap.String("line", kept))
				continue
			}
			g = drillGroup{depth: depth}
			switch r, ok := word.Value(code, 'R'); {
			case ok:
				g.top = r
			case haveRapidZ:
				g.top = rapidZ
			}
			open = true
			if havePosition {
				addPoint()
			}

		case open && (hasX || hasY):
			addPoint()
		}
	}
	finish()

	return a
}
