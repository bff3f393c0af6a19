package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/vk/infographgo/internal/fsutil"
)

// PrintSummary writes the end-of-run console block: the produced markdown
// files with their sizes, plus the suggested next actions.
func PrintSummary(w io.Writer, outputDir, notebookID string, entries []fsutil.Entry) {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "  Infographic Generation Complete!")
	fmt.Fprintf(w, "%s\n\n", rule)

	fmt.Fprintf(w, "Output: %s\n", outputDir)
	fmt.Fprintf(w, "Notebook: %s\n", notebookID)

	fmt.Fprintf(w, "\nGenerated %d files:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(w, "  %s (%d bytes)\n", e.Name, e.Size)
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Review content in %s/\n", outputDir)
	fmt.Fprintf(w, "  2. nlm chat %s  (interactive exploration)\n", notebookID)
	fmt.Fprintln(w, "  3. Design the infographic with your preferred tool")

	fmt.Fprintf(w, "\nCleanup: nlm rm %s\n", notebookID)
}
