// Package main is the entry point for the strokemark command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/builder"
	"github.com/dshills/strokemark/internal/cleanup"
	"github.com/dshills/strokemark/internal/config"
	"github.com/dshills/strokemark/internal/gcode/normalize"
	"github.com/dshills/strokemark/internal/logging"
	"github.com/dshills/strokemark/internal/region"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	verbose     bool
	configPath  string
	projectPath string

	cfg    *config.Config
	logger *zap.Logger
)

// errNoProject is returned by commands that need a project file when none
// is configured.
var errNoProject = errors.New("no project file: pass --project or set project.path")

var rootCmd = &cobra.Command{
	Use:   "strokemark",
	Short: "Build, tag and maintain named G-code regions",
	Long: `strokemark splits selected G-code into named regions (mill strokes,
turn strokes, drill cycle groups), tags every line with a display tag such as
(M:A0003) and keeps the regions of a project file consistent.

Regions are stored in a YAML project file. Settings come from
strokemark.toml or strokemark.yaml and STROKEMARK_* environment variables.`,
	Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: strokemark.toml / strokemark.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "", "Region project file")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(letterCmd)
	rootCmd.AddCommand(cleanupCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(alignCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger.
func setup(*cobra.Command, []string) error {
	var opts []config.Option
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, config.WithFiles(configPath))
	}
	c, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		c.Logging.Level = "debug"
	}

	l, err := logging.New(c.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg, logger = c, l

	if projectPath == "" {
		projectPath = c.ProjectPath
	}
	logger.Debug("configuration loaded",
		zap.Strings("sources", c.Sources),
		zap.Int("tag_column", c.TagColumn),
		zap.String("project", projectPath),
	)
	return nil
}

func projectFile() (string, error) {
	if projectPath == "" {
		return "", errNoProject
	}
	return projectPath, nil
}

func builderOptions() []builder.Option {
	defaults := make(map[region.Kind]map[string]string, len(region.Kinds()))
	for _, k := range region.Kinds() {
		defaults[k] = cfg.DefaultsFor(k)
	}
	return []builder.Option{
		builder.WithTagColumn(cfg.TagColumn),
		builder.WithLogger(logger.Named("builder")),
		builder.WithDefaults(defaults),
	}
}

func newEngine() *cleanup.Engine {
	return cleanup.New(
		cleanup.WithTagColumn(cfg.TagColumn),
		cleanup.WithLogger(logger.Named("cleanup")),
	)
}

// readInput reads path, or standard input when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeOutput writes the \n-separated text to path, or to the command
// output when path is "-", converting line breaks to le.
func writeOutput(cmd *cobra.Command, path, text string, le normalize.LineEnding) error {
	if path == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), le.Apply(text))
		return err
	}
	if !strings.HasSuffix(text, "\n") && text != "" {
		text += "\n"
	}
	return os.WriteFile(path, []byte(le.Apply(text)), 0o644)
}

// existingLineEnding returns the line ending style of the file at path, or
// LF when it cannot be read.
func existingLineEnding(path string) normalize.LineEnding {
	if path == "-" {
		return normalize.LineEndingLF
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return normalize.LineEndingLF
	}
	return normalize.DetectLineEnding(string(data))
}
