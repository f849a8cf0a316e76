package cleanup

import (
	"slices"
	"strings"

	"github.com/samber/oops"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/address"
	"github.com/dshills/strokemark/internal/gcode/normalize"
	"github.com/dshills/strokemark/internal/region"
)

// Engine rebuilds the addressing of stored regions.
type Engine struct {
	tagColumn int
	logger    *zap.Logger
	newUID    func() string
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := defaultEngine()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats records what a rebuild did to one region.
type Stats struct {
	Kind region.Kind
	Name string
	Set  byte

	LinesIn  int
	LinesOut int

	// Blanks counts lines dropped because they were empty once addressing
	// was removed.
	Blanks int

	// Comments counts parenthesized blocks removed from kept lines and
	// from lines that were dropped.
	Comments int

	// CommentOnly counts lines dropped because nothing but comments
	// remained.
	CommentOnly int

	// Remapped counts snapshot lines moved to their new anchor.
	Remapped int

	// Stale counts snapshot lines whose old ordinal has no successor.
	// They are left unchanged.
	Stale int

	// NewUID is set when the region carried no anchor and was given a
	// fresh uid.
	NewUID bool
}

// Removed returns the number of lines dropped from the region.
func (s Stats) Removed() int {
	return s.Blanks + s.CommentOnly
}

// Output is the result of a rebuild.
type Output struct {
	// Report is a human-readable summary.
	Report string

	// EditorText holds every rebuilt region rendered for the editor:
	// start line, tag-aligned lines, end line and a blank separator.
	EditorText string

	// Stats has one entry per region in processing order.
	Stats []Stats

	// Touched counts the regions rebuilt per kind.
	Touched map[region.Kind]int
}

// Total returns the number of regions rebuilt.
func (o *Output) Total() int {
	n := 0
	for _, c := range o.Touched {
		n += c
	}
	return n
}

// Rebuild rewrites every region in store, kind by kind in processing
// order. The i-th region of a kind gets set letter SetLetter(i).
//
// Every region is checked before the first one is modified: a missing
// region or line container fails the whole call with ErrMissingLines and
// leaves the store untouched.
func (e *Engine) Rebuild(store *region.Store) (*Output, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := validate(store); err != nil {
		return nil, err
	}

	out := &Output{Touched: make(map[region.Kind]int, len(region.Kinds()))}
	var editor strings.Builder
	for _, k := range region.Kinds() {
		for i, r := range store.Collection(k).Regions() {
			st := e.rebuildRegion(r, address.SetLetter(i))
			out.Stats = append(out.Stats, st)
			out.Touched[k]++
			e.render(&editor, r)
			e.logger.Debug("region rebuilt",
				zap.Stringer("kind", k),
				zap.String("region", r.Name),
				zap.String("set", string(st.Set)),
				zap.Int("lines", st.LinesOut),
				zap.Int("removed", st.Removed()),
			)
		}
	}
	out.EditorText = editor.String()
	out.Report = formatReport(out)

	e.logger.Info("cleanup finished",
		zap.Int("regions", out.Total()),
		zap.Int("mill", out.Touched[region.Mill]),
		zap.Int("turn", out.Touched[region.Turn]),
		zap.Int("drill", out.Touched[region.Drill]),
	)
	return out, nil
}

func validate(store *region.Store) error {
	for _, k := range region.Kinds() {
		c := store.Collection(k)
		if c == nil {
			continue
		}
		for i, r := range c.Regions() {
			if r == nil {
				return oops.
					In(ErrDomain).
					With("kind", k.String(), "position", i).
					Wrapf(ErrMissingLines, "%s region %d is nil", k, i)
			}
			if r.Lines == nil {
				return oops.
					In(ErrDomain).
					With("kind", k.String(), "region", r.Name, "position", i).
					Wrapf(ErrMissingLines, "%s region %q has no line container", k, r.Name)
			}
		}
	}
	return nil
}

type keptLine struct {
	oldN    int
	payload string
}

// RebuildRegion rewrites a single region under the given set letter and
// returns what it did. The region must have a line container.
func (e *Engine) RebuildRegion(r *region.Region, set byte) (Stats, error) {
	if r == nil || r.Lines == nil {
		return Stats{}, ErrMissingLines
	}
	return e.rebuildRegion(r, set), nil
}

func (e *Engine) rebuildRegion(r *region.Region, set byte) Stats {
	st := Stats{Kind: r.Kind, Name: r.Name, Set: set, LinesIn: len(r.Lines)}

	uid := ""
	kept := make([]keptLine, 0, len(r.Lines))
	for _, raw := range r.Lines {
		s := normalize.StripLineNumber(raw)
		oldN := -1
		if block, rest, ok := address.SplitAnchorBlock(s); ok {
			if a, ok := address.ParseAnchorBlock(block); ok {
				oldN = a.N
				if uid == "" {
					uid = a.UID
				}
			}
			s = rest
		}
		s = strings.TrimSpace(s)
		if s == "" {
			st.Blanks++
			continue
		}
		s = strings.TrimSpace(address.StripTrailingTag(s))
		s, n := normalize.RemoveComments(s)
		st.Comments += n
		s = strings.TrimSpace(s)
		if s == "" {
			st.CommentOnly++
			continue
		}
		kept = append(kept, keptLine{oldN: oldN, payload: s})
	}

	if uid == "" {
		uid = e.newUID()
		st.NewUID = true
	}

	remap := address.NewRemap()
	lines := make([]string, len(kept))
	for i, k := range kept {
		n := i + 1
		lines[i] = address.Anchor{UID: uid, N: n}.String() +
			k.payload +
			address.Tag{Kind: r.Kind.Letter(), Set: set, Seq: i}.String()
		remap.Add(k.oldN, n)
	}
	r.Lines = lines
	st.LinesOut = len(lines)

	e.remapSnapshot(r, remap, &st)
	return st
}

// remapSnapshot points every anchored snapshot line at the line that now
// carries its old ordinal. Keys are visited in sorted order so logs are
// stable.
func (e *Engine) remapSnapshot(r *region.Region, remap *address.Remap, st *Stats) {
	keys := make([]string, 0, len(r.Snapshot))
	for k := range r.Snapshot {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		v := r.Snapshot[key]
		if !strings.Contains(v, "#") {
			continue
		}
		if !strings.Contains(v, "\n") {
			r.Snapshot[key] = e.remapLine(r, key, v, remap, st)
			continue
		}
		pieces := strings.Split(v, "\n")
		out := make([]string, 0, len(pieces))
		for _, p := range pieces {
			p = e.remapLine(r, key, p, remap, st)
			if strings.TrimSpace(p) == "" {
				continue
			}
			out = append(out, p)
		}
		r.Snapshot[key] = strings.Join(out, "\n")
	}
}

func (e *Engine) remapLine(r *region.Region, key, line string, remap *address.Remap, st *Stats) string {
	s := normalize.StripLineNumber(strings.TrimRight(line, "\r"))
	a, _, ok := address.ParseAnchor(s)
	if !ok {
		return line
	}
	n, ok := remap.Lookup(a.N)
	if !ok {
		st.Stale++
		e.logger.Warn("snapshot line has no successor",
			zap.Stringer("kind", r.Kind),
			zap.String("region", r.Name),
			zap.String("key", key),
			zap.Int("ordinal", a.N),
		)
		return line
	}
	st.Remapped++
	return r.Lines[n-1]
}

func (e *Engine) render(sb *strings.Builder, r *region.Region) {
	sb.WriteString(region.StartLine(r.Name))
	sb.WriteByte('\n')
	for _, line := range r.Lines {
		sb.WriteString(normalize.InsertAndAlignTag(line, e.tagColumn))
		sb.WriteByte('\n')
	}
	sb.WriteString(region.EndLine(r.Name))
	sb.WriteString("\n\n")
}
