package builder

import (
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/gcode/address"
	"github.com/dshills/strokemark/internal/region"
)

// DefaultTagColumn is the 0-based column display tags are aligned to.
const DefaultTagColumn = 75

// Option configures a Builder or a gcode-only registration.
type Option func(*settings)

type settings struct {
	tagColumn     int
	logger        *zap.Logger
	defaults      map[region.Kind]map[string]string
	newUID        func() string
	showInViewAll bool
	exportEnabled bool
}

func newSettings(opts []Option) settings {
	s := settings{
		tagColumn:     DefaultTagColumn,
		logger:        zap.NewNop(),
		newUID:        address.NewUID,
		showInViewAll: true,
		exportEnabled: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithTagColumn sets the column display tags are aligned to.
func WithTagColumn(col int) Option {
	return func(s *settings) {
		if col > 0 {
			s.tagColumn = col
		}
	}
}

// WithLogger sets the logger used to report skipped items.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaults sets the snapshot values seeded into new regions of each
// kind. Existing snapshot keys are never overwritten.
func WithDefaults(defaults map[region.Kind]map[string]string) Option {
	return func(s *settings) {
		s.defaults = defaults
	}
}

// WithUIDFunc replaces the uid generator for new regions.
func WithUIDFunc(fn func() string) Option {
	return func(s *settings) {
		if fn != nil {
			s.newUID = fn
		}
	}
}

// WithVisibility sets the owner flags of new regions.
func WithVisibility(showInViewAll, exportEnabled bool) Option {
	return func(s *settings) {
		s.showInViewAll = showInViewAll
		s.exportEnabled = exportEnabled
	}
}
