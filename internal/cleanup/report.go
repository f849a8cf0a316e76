package cleanup

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dshills/strokemark/internal/region"
)

func formatReport(out *Output) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cleanup: %d region(s) rebuilt (mill %d, turn %d, drill %d)\n",
		out.Total(), out.Touched[region.Mill], out.Touched[region.Turn], out.Touched[region.Drill])
	if len(out.Stats) == 0 {
		return sb.String()
	}

	var blanks, comments, commentOnly, stale int
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tREGION\tSET\tIN\tOUT\tBLANK\tCOMMENTS\tCOMMENT-ONLY\tSTALE")
	for _, st := range out.Stats {
		fmt.Fprintf(tw, "%s\t%s\t%c\t%d\t%d\t%d\t%d\t%d\t%d\n",
			st.Kind, st.Name, st.Set, st.LinesIn, st.LinesOut,
			st.Blanks, st.Comments, st.CommentOnly, st.Stale)
		blanks += st.Blanks
		comments += st.Comments
		commentOnly += st.CommentOnly
		stale += st.Stale
	}
	tw.Flush()

	fmt.Fprintf(&sb, "Removed %d blank line(s), %d comment(s), %d comment-only line(s)\n",
		blanks, comments, commentOnly)
	if stale > 0 {
		fmt.Fprintf(&sb, "Warning: %d snapshot line(s) could not be remapped\n", stale)
	}
	return sb.String()
}
