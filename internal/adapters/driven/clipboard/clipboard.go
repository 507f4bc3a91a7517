// Package clipboard provides the system clipboard adapter.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.Clipboard = (*Writer)(nil)

// Writer writes to the system clipboard.
type Writer struct{}

// NewWriter creates a new clipboard writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText places text on the system clipboard. Headless environments
// without a clipboard report domain.ErrClipboardUnavailable.
func (w *Writer) WriteText(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}
