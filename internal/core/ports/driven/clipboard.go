package driven

// Clipboard is the system clipboard boundary. Failures are reported to
// the caller, not retried.
type Clipboard interface {
	// WriteText places text on the system clipboard.
	WriteText(text string) error
}
