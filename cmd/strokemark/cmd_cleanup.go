package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/cleanup"
	"github.com/dshills/strokemark/internal/project"
)

var (
	cleanupWrite     bool
	cleanupEditorOut string
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Rebuild anchors and display tags of every region",
	Long: `Strips stale addressing, comments and blank lines from every region in the
project, renumbers anchors and display tags, remaps snapshot references and
prints a report. Nothing is written unless --write or --editor-out is given.
An existing --editor-out file keeps its line ending style.`,
	Args: cobra.NoArgs,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().BoolVarP(&cleanupWrite, "write", "w", false, "Save the rebuilt regions to the project file")
	cleanupCmd.Flags().StringVarP(&cleanupEditorOut, "editor-out", "o", "", "Write the editor text to this file (- for stdout)")
}

func runCleanup(cmd *cobra.Command, _ []string) error {
	path, err := projectFile()
	if err != nil {
		return err
	}
	out, err := cleanupProject(path, cleanupWrite)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out.Report)
	if cleanupEditorOut != "" {
		le := existingLineEnding(cleanupEditorOut)
		if err := writeOutput(cmd, cleanupEditorOut, out.EditorText, le); err != nil {
			return fmt.Errorf("editor text: %w", err)
		}
	}
	return nil
}

// cleanupProject rebuilds the project at path and, when write is set,
// saves it if the rebuild changed anything.
func cleanupProject(path string, write bool) (*cleanup.Output, error) {
	store, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	out, err := newEngine().Rebuild(store)
	if err != nil {
		return nil, err
	}
	if !write {
		return out, nil
	}

	var buf bytes.Buffer
	if err := project.Encode(&buf, store); err != nil {
		return nil, err
	}
	if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, buf.Bytes()) {
		logger.Debug("project unchanged", zap.String("path", path))
		return out, nil
	}
	if err := project.Save(path, store); err != nil {
		return nil, err
	}
	logger.Info("project saved", zap.String("path", path), zap.Int("regions", out.Total()))
	return out, nil
}
