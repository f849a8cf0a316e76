package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/strokemark/internal/config/loader"
	"github.com/dshills/strokemark/internal/logging"
	"github.com/dshills/strokemark/internal/region"
)

const maxIncludeDepth = 8

// Config holds the resolved settings.
type Config struct {
	// TagColumn is the column display tags are aligned to.
	TagColumn int

	Logging logging.Config

	// ProjectPath is the region project file used when a command is given
	// no --project flag.
	ProjectPath string

	// Defaults seed snapshot keys per kind.
	Defaults map[region.Kind]map[string]string

	// Sources lists the files that contributed, in load order.
	Sources []string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TagColumn: 75,
		Logging:   logging.Config{Level: "info", Format: logging.FormatConsole},
		Defaults: map[region.Kind]map[string]string{
			region.Mill:  {"ToolDiameter": "0", "CutSide": "center"},
			region.Turn:  {"ToolNoseRadius": "0"},
			region.Drill: {"DrillDiameter": "0", "PeckDepth": "0"},
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs    loader.FileSystem
	files []string
	env   loader.Loader
}

// WithFS reads configuration files through fsys.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithFiles sets the files to load, lowest precedence first. Missing
// files are skipped.
func WithFiles(paths ...string) Option {
	return func(o *options) { o.files = paths }
}

// WithEnv replaces the environment source; nil disables it.
func WithEnv(l loader.Loader) Option {
	return func(o *options) { o.env = l }
}

// DefaultFiles returns the user file followed by the working directory
// files, each in TOML and YAML form.
func DefaultFiles() []string {
	var files []string
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files,
			filepath.Join(dir, "strokemark", "config.toml"),
			filepath.Join(dir, "strokemark", "config.yaml"),
		)
	}
	return append(files, "strokemark.toml", "strokemark.yaml")
}

// Load resolves the configuration. Without options it reads DefaultFiles
// from the OS file system and the STROKEMARK_ environment.
func Load(opts ...Option) (*Config, error) {
	o := &options{
		fs:    loader.DefaultFS(),
		files: DefaultFiles(),
		env:   loader.NewEnvLoader(loader.EnvPrefix),
	}
	for _, opt := range opts {
		opt(o)
	}

	merged := make(map[string]any)
	var sources []string
	for _, path := range o.files {
		m, err := loader.LoadWithIncludes(o.fs, path, maxIncludeDepth)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		if m == nil {
			continue
		}
		merged = loader.DeepMerge(merged, m)
		sources = append(sources, path)
	}
	if o.env != nil {
		m, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	cfg.Sources = sources
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(m map[string]any) error {
	if output, ok := m["output"].(map[string]any); ok {
		if v, ok := output["tag_column"]; ok {
			n, ok := toInt(v)
			if !ok {
				return &ValidationError{Path: "output.tag_column", Value: v, Message: "must be an integer"}
			}
			c.TagColumn = n
		}
	}
	if lg, ok := m["logging"].(map[string]any); ok {
		if v, ok := lg["level"]; ok {
			c.Logging.Level = fmt.Sprint(v)
		}
		if v, ok := lg["format"]; ok {
			c.Logging.Format = fmt.Sprint(v)
		}
	}
	if p, ok := m["project"].(map[string]any); ok {
		if v, ok := p["path"]; ok {
			c.ProjectPath = fmt.Sprint(v)
		}
	}
	if d, ok := m["defaults"].(map[string]any); ok {
		for name, raw := range d {
			kind, err := region.ParseKind(name)
			if err != nil {
				return &ValidationError{Path: "defaults." + name, Value: name, Message: "unknown region kind"}
			}
			table, ok := raw.(map[string]any)
			if !ok {
				return &ValidationError{Path: "defaults." + name, Value: raw, Message: "must be a table"}
			}
			for key, v := range table {
				c.Defaults[kind][key] = fmt.Sprint(v)
			}
		}
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.TagColumn <= 0 {
		return &ValidationError{Path: "output.tag_column", Value: c.TagColumn, Message: "must be positive"}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: err.Error()}
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return &ValidationError{Path: "logging.format", Value: c.Logging.Format, Message: "must be console or json"}
	}
	return nil
}

// DefaultsFor returns a copy of the snapshot defaults for kind.
func (c *Config) DefaultsFor(kind region.Kind) map[string]string {
	return maps.Clone(c.Defaults[kind])
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}
