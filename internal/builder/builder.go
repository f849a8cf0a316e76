package builder

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/address"
	"github.com/dshills/strokemark/internal/gcode/normalize"
	"github.com/dshills/strokemark/internal/region"
)

// Block is one region as produced by a builder: a (NAME ST) line, the
// tagged content lines and a (NAME END) line.
type Block struct {
	Name  string
	Set   byte
	Lines []string

	// Meta holds the values the block was derived from: "Plane" for mill
	// blocks, "Depth", "Top" and "Points" for drill blocks.
	Meta map[string]string
}

// Interior returns the content lines without the ST/END wrapper.
func (b Block) Interior() []string {
	if len(b.Lines) < 2 {
		return nil
	}
	return b.Lines[1 : len(b.Lines)-1]
}

// Text returns the block as newline-joined text.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Result is the outcome of a successful Build.
type Result struct {
	Kind    region.Kind
	Blocks  []Block
	Message string

	// Skipped counts items discarded during analysis, such as drill
	// cycles without a depth or groups without points.
	Skipped int
}

// Text returns every block's text separated by newlines.
func (r Result) Text() string {
	parts := lo.Map(r.Blocks, func(b Block, _ int) string { return b.Text() })
	return strings.Join(parts, "\n")
}

// candidate is a region found by a splitter, before tagging.
type candidate struct {
	lines []string
	meta  map[string]string
}

// analysis is what a splitter reports back to Build.
type analysis struct {
	candidates []candidate
	skipped    int
	hasTokens  bool
}

// Builder turns selected G-code into region blocks for one kind.
type Builder struct {
	kind region.Kind
	settings
}

// New creates a builder for kind.
func New(kind region.Kind, opts ...Option) *Builder {
	return &Builder{kind: kind, settings: newSettings(opts)}
}

// Kind returns the builder's kind.
func (b *Builder) Kind() region.Kind {
	return b.kind
}

// Build analyses selected and returns one block per region found.
// document is the full current text and is only scanned for display tags
// already in use. On failure the error wraps one of the package sentinels
// and carries a message suitable for display; no blocks are returned.
func (b *Builder) Build(selected, document, baseName string) (Result, error) {
	res := Result{Kind: b.kind}

	base := strings.TrimSpace(baseName)
	if base == "" {
		return res, fmt.Errorf("%w: enter a name for the %s regions", ErrEmptyName, b.kind)
	}
	if normalize.IsBlank(selected) {
		return res, fmt.Errorf("%w: select the %s G-code first", ErrEmptySelection, b.kind)
	}

	lines := lo.FilterMap(normalize.SplitLines(selected), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(normalize.StripAddressing(line))
		return line, line != ""
	})
	if len(lines) == 0 {
		return res, fmt.Errorf("%w: selection contains only blank lines", ErrNoUsableLines)
	}

	var a analysis
	switch b.kind {
	case region.Mill:
		a = b.splitMill(lines)
	case region.Turn:
		a = b.splitTurn(lines)
	case region.Drill:
		a = b.splitDrill(lines)
	default:
		return res, fmt.Errorf("%w: %s", region.ErrUnknownKind, b.kind)
	}

	if !a.hasTokens {
		return res, fmt.Errorf("%w: %s", ErrNoAxisTokens, tokenHint(b.kind))
	}
	res.Skipped = a.skipped
	if len(a.candidates) == 0 {
		return res, fmt.Errorf("%w: no %s content in %d selected lines", ErrNoRegions, b.kind, len(lines))
	}

	first := address.NextLetter(document)
	set := first
	for i, c := range a.candidates {
		name := fmt.Sprintf("%s (%d)", base, i+1)
		res.Blocks = append(res.Blocks, b.block(name, set, c))
		set = address.NextSetLetter(set)
	}

	res.Message = fmt.Sprintf("created %d %s region(s) starting at set %c", len(res.Blocks), b.kind, first)
	if res.Skipped > 0 {
		res.Message += fmt.Sprintf(", skipped %d", res.Skipped)
	}
	b.logger.Debug("regions built",
		zap.Stringer("kind", b.kind),
		zap.Int("blocks", len(res.Blocks)),
		zap.Int("skipped", res.Skipped),
		zap.String("set", string(first)),
	)
	return res, nil
}

// block tags and wraps a candidate.
func (b *Builder) block(name string, set byte, c candidate) Block {
	lines := make([]string, 0, len(c.lines)+2)
	lines = append(lines, region.StartLine(name))
	for i, line := range c.lines {
		tag := address.Tag{Kind: b.kind.Letter(), Set: set, Seq: i}
		lines = append(lines, normalize.InsertAndAlignTag(line+tag.String(), b.tagColumn))
	}
	lines = append(lines, region.EndLine(name))
	return Block{Name: name, Set: set, Lines: lines, Meta: c.meta}
}

func tokenHint(kind region.Kind) string {
	switch kind {
	case region.Mill:
		return "mill regions need a Z plane and X/Y moves"
	case region.Turn:
		return "turn regions need X/Z moves"
	default:
		return "drill regions need a canned cycle (G81-G89)"
	}
}

// stroke accumulates the lines of one mill or turn stroke.
type stroke struct {
	open  bool
	leads []string
	cuts  []string
}

// addCut appends line unless it repeats the previous cut (case-insensitive).
func (s *stroke) addCut(line string) {
	if n := len(s.cuts); n > 0 && strings.EqualFold(s.cuts[n-1], line) {
		return
	}
	s.cuts = append(s.cuts, line)
}

// codeOf returns the part of a selected line that is analysed for words,
// and the part that is copied into a block.
func codeOf(line string) (code, kept string) {
	kept = normalize.StripTrailingComment(line)
	return normalize.StripComments(kept), kept
}
