package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/strokemark/internal/builder"
	"github.com/dshills/strokemark/internal/project"
	"github.com/dshills/strokemark/internal/region"
)

var (
	buildSelection string
	buildDocument  string
	buildName      string
	buildRegister  bool
)

var buildCmd = &cobra.Command{
	Use:   "build mill|turn|drill",
	Short: "Split selected G-code into tagged regions",
	Long: `Analyses the selected G-code and prints one (NAME (n) ST) ... (NAME (n) END)
block per region found. Set letters continue after the highest letter used in
--document, or in the project when --register is given without a document.

Examples:
  strokemark build mill --selection pocket.nc --name POCKET
  strokemark build drill --selection - --name HOLES --register -p shop.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"mill", "turn", "drill"},
	RunE:      runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildSelection, "selection", "s", "-", "File holding the selected G-code (- for stdin)")
	buildCmd.Flags().StringVarP(&buildDocument, "document", "d", "", "Current document, scanned for set letters in use")
	buildCmd.Flags().StringVarP(&buildName, "name", "n", "", "Base name of the new regions (required)")
	buildCmd.Flags().BoolVar(&buildRegister, "register", false, "Store the regions in the project file")
	_ = buildCmd.MarkFlagRequired("name")
}

func runBuild(cmd *cobra.Command, args []string) error {
	kind, err := region.ParseKind(args[0])
	if err != nil {
		return err
	}
	selected, err := readInput(cmd, buildSelection)
	if err != nil {
		return fmt.Errorf("selection: %w", err)
	}

	var (
		store *region.Store
		path  string
	)
	if buildRegister {
		if path, err = projectFile(); err != nil {
			return err
		}
		if store, err = project.Load(path); err != nil {
			return err
		}
	}

	document := ""
	switch {
	case buildDocument != "":
		if document, err = readInput(cmd, buildDocument); err != nil {
			return fmt.Errorf("document: %w", err)
		}
	case store != nil:
		document = storeText(store)
	}

	res, err := builder.New(kind, builderOptions()...).Build(selected, document, buildName)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Text())
	logger.Info(res.Message)

	if store == nil {
		return nil
	}
	regions, err := builder.Register(store, res, builderOptions()...)
	if err != nil {
		return err
	}
	if err := project.Save(path, store); err != nil {
		return err
	}
	for _, r := range regions {
		logger.Info("region registered",
			zap.Stringer("kind", r.Kind),
			zap.String("region", r.Name),
			zap.Int("lines", len(r.Lines)),
		)
	}
	return nil
}

// storeText joins the lines of every stored region so their display tags
// count as letters in use.
func storeText(store *region.Store) string {
	var sb strings.Builder
	for _, r := range store.All() {
		for _, line := range r.Lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
