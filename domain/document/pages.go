package document

import (
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// PageCount reads the page count from the document's page tree.
func PageCount(path string) (int, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()

	n, err := pagetree.NumPages(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read page tree: %w", err)
	}
	return n, nil
}
