package builder

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/address"
	"github.com/dshills/strokemark/internal/gcode/normalize"
	"github.com/dshills/strokemark/internal/gcode/word"
	"github.com/dshills/strokemark/internal/region"
)

// Snapshot keys written by AddFromGcodeOnly. Each value is the anchored
// line the marker refers to.
const (
	SnapZPlane = "ZPlaneLine"
	SnapFirstX = "FirstXLine"
	SnapFirstY = "FirstYLine"
	SnapFirstZ = "FirstZLine"
	SnapLastX  = "LastXLine"
	SnapLastY  = "LastYLine"
	SnapLastZ  = "LastZLine"
	SnapDepth  = "DepthLine"
	SnapTop    = "TopLine"
)

// AddFromGcodeOnly builds a Region of kind from already-segmented G-code
// lines and registers it in store under a unique name derived from name.
//
// Every non-blank line is stored in canonical form behind a fresh anchor
// (#uid,n#KEY). The axis extrema markers of the kind are recorded as
// snapshot values, then the configured defaults are seeded for keys not
// yet present.
func AddFromGcodeOnly(store *region.Store, kind region.Kind, name string, lines []string, opts ...Option) (*region.Region, error) {
	s := newSettings(opts)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: enter a name for the %s region", ErrEmptyName, kind)
	}

	keys := make([]string, 0, len(lines))
	for _, line := range lines {
		if key := normalize.KeyWithTag(line); key != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: region %q has no G-code lines", ErrNoUsableLines, name)
	}

	r := region.New(kind, name)
	r.ShowInViewAll = s.showInViewAll
	r.ExportEnabled = s.exportEnabled

	uid := s.newUID()
	r.Lines = make([]string, len(keys))
	for i, key := range keys {
		r.Lines[i] = address.Anchor{UID: uid, N: i + 1}.String() + key
	}

	recordMarkers(r)
	for k, v := range s.defaults[kind] {
		r.SeedSnapshot(k, v)
	}

	stored, err := store.Add(r)
	if err != nil {
		return nil, fmt.Errorf("registering %s region %q: %w", kind, name, err)
	}
	s.logger.Debug("region registered",
		zap.Stringer("kind", kind),
		zap.String("name", stored),
		zap.Int("lines", len(r.Lines)),
	)
	return r, nil
}

// AddMillFromGcodeOnly registers a mill region from gcode-only lines.
func AddMillFromGcodeOnly(store *region.Store, name string, lines []string, opts ...Option) (*region.Region, error) {
	return AddFromGcodeOnly(store, region.Mill, name, lines, opts...)
}

// AddTurnFromGcodeOnly registers a turn region from gcode-only lines.
func AddTurnFromGcodeOnly(store *region.Store, name string, lines []string, opts ...Option) (*region.Region, error) {
	return AddFromGcodeOnly(store, region.Turn, name, lines, opts...)
}

// AddDrillFromGcodeOnly registers a drill region from gcode-only lines.
func AddDrillFromGcodeOnly(store *region.Store, name string, lines []string, opts ...Option) (*region.Region, error) {
	return AddFromGcodeOnly(store, region.Drill, name, lines, opts...)
}

// Register stores every block of a Build result as a Region.
// Regions registered before a failure stay in the store.
func Register(store *region.Store, res Result, opts ...Option) ([]*region.Region, error) {
	regions := make([]*region.Region, 0, len(res.Blocks))
	for _, b := range res.Blocks {
		r, err := AddFromGcodeOnly(store, res.Kind, b.Name, b.Interior(), opts...)
		if err != nil {
			return regions, err
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// extrema tracks the first and last line carrying an axis.
type extrema struct {
	first, last string
}

func (e *extrema) see(line string) {
	if e.first == "" {
		e.first = line
	}
	e.last = line
}

// recordMarkers stores the axis extrema markers of r's kind.
func recordMarkers(r *region.Region) {
	var x, y, z extrema
	var depth, top string

	for _, line := range r.Lines {
		payload := normalize.KeyForMatch(line)
		if word.HasAxis(payload, 'X') {
			x.see(line)
		}
		if word.HasAxis(payload, 'Y') {
			y.see(line)
		}
		if word.HasAxis(payload, 'Z') {
			z.see(line)
		}
		if depth == "" && strings.HasPrefix(payload, "DZ") {
			depth = line
		}
		if top == "" && strings.HasPrefix(payload, "TZ") {
			top = line
		}
	}

	set := func(key, value string) {
		if value != "" {
			r.SetSnapshot(key, value)
		}
	}
	switch r.Kind {
	case region.Mill:
		set(SnapZPlane, z.first)
		set(SnapFirstX, x.first)
		set(SnapFirstY, y.first)
		set(SnapLastX, x.last)
		set(SnapLastY, y.last)
	case region.Turn:
		set(SnapFirstX, x.first)
		set(SnapLastX, x.last)
		set(SnapFirstZ, z.first)
		set(SnapLastZ, z.last)
	case region.Drill:
		set(SnapDepth, depth)
		set(SnapTop, top)
		set(SnapFirstX, x.first)
		set(SnapFirstY, y.first)
		set(SnapLastX, x.last)
		set(SnapLastY, y.last)
	}
}
