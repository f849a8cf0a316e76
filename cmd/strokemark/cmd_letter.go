package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/strokemark/internal/gcode/address"
)

var letterDocument string

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Print the next free set letter of a document",
	Args:  cobra.NoArgs,
	RunE:  runLetter,
}

func init() {
	letterCmd.Flags().StringVarP(&letterDocument, "document", "d", "-", "Document to scan (- for stdin)")
}

func runLetter(cmd *cobra.Command, _ []string) error {
	doc, err := readInput(cmd, letterDocument)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%c\n", address.NextLetter(doc))
	return nil
}
