package docprep

import (
	"fmt"
	"strings"
)

// FormatDocument renders a processed document as cleaned markdown:
// a header block followed by all chunk contents separated by blank lines.
func FormatDocument(doc *ProcessedDocument) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	fmt.Fprintf(&b, "**Category**: %s\n", doc.Category)
	fmt.Fprintf(&b, "**Complexity**: %.2f\n", doc.ComplexityScore)
	fmt.Fprintf(&b, "**Original URL**: %s\n", doc.OriginalURL)
	fmt.Fprintf(&b, "**Source File**: %s\n\n", doc.FilePath)
	b.WriteString(doc.Content("\n\n"))
	return b.String()
}
