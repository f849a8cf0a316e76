package cleanup

import (
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/address"
)

// DefaultTagColumn is the column display tags are aligned to in the
// editor text.
const DefaultTagColumn = 75

// Option configures an Engine.
type Option func(*Engine)

// WithTagColumn sets the tag alignment column of the editor text.
func WithTagColumn(col int) Option {
	return func(e *Engine) {
		if col > 0 {
			e.tagColumn = col
		}
	}
}

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithUIDFunc replaces the uid generator used for regions that carry no
// anchor at all.
func WithUIDFunc(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newUID = fn
		}
	}
}

func defaultEngine() *Engine {
	return &Engine{
		tagColumn: DefaultTagColumn,
		logger:    zap.NewNop(),
		newUID:    address.NewUID,
	}
}
