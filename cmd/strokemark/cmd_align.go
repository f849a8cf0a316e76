package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/strokemark/internal/gcode/normalize"
)

var alignColumn int

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Align the display tags of lines read from stdin",
	Long: `Reads lines from stdin, strips line-number prefixes and anchors, and pads
each line so its trailing display tag starts at --column (default: the
configured tag column). Lines without a tag pass through with only their
addressing removed. Output uses the input's dominant line ending.`,
	Args: cobra.NoArgs,
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().IntVar(&alignColumn, "column", 0, "Tag column (default from configuration)")
}

func runAlign(cmd *cobra.Command, _ []string) error {
	col := alignColumn
	if col <= 0 {
		col = cfg.TagColumn
	}

	text, err := readInput(cmd, "-")
	if err != nil {
		return err
	}
	lines := normalize.Lines(text)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(normalize.InsertAndAlignTag(line, col))
		sb.WriteByte('\n')
	}
	return writeOutput(cmd, "-", sb.String(), normalize.DetectLineEnding(text))
}
