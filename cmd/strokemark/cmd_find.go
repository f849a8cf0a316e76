package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/strokemark/internal/locate"
	"github.com/dshills/strokemark/internal/project"
)

var (
	findDocument string
	findStrict   bool
)

// errRegionsNotFound is returned by find --strict.
var errRegionsNotFound = errors.New("regions missing or ambiguous in document")

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate every project region in a document",
	Long: `Searches the document for each region's lines, ignoring whitespace, case,
line-number prefixes and anchors. A region matching at more than one place is
reported as ambiguous.`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findDocument, "document", "d", "-", "Document to search (- for stdin)")
	findCmd.Flags().BoolVar(&findStrict, "strict", false, "Fail if any region is missing or ambiguous")
}

func runFind(cmd *cobra.Command, _ []string) error {
	path, err := projectFile()
	if err != nil {
		return err
	}
	store, err := project.Load(path)
	if err != nil {
		return err
	}
	doc, err := readInput(cmd, findDocument)
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}

	bad := 0
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tREGION\tSTATUS\tLINES")
	for _, r := range store.All() {
		m, ok := locate.FindRegion(doc, r)
		switch {
		case !ok:
			bad++
			fmt.Fprintf(tw, "%s\t%s\tmissing\t-\n", r.Kind, r.Name)
		case m.Ambiguous():
			bad++
			fmt.Fprintf(tw, "%s\t%s\tambiguous (%d)\t%d-%d\n", r.Kind, r.Name, m.Count, m.Start+1, m.End+1)
		default:
			fmt.Fprintf(tw, "%s\t%s\tfound\t%d-%d\n", r.Kind, r.Name, m.Start+1, m.End+1)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if findStrict && bad > 0 {
		return fmt.Errorf("%w: %d of %d", errRegionsNotFound, bad, store.Len())
	}
	return nil
}
