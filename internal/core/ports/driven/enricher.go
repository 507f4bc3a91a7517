package driven

import (
	"context"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// Enricher is the AI enrichment webhook boundary. It is an external
// collaborator: the reconciliation core never calls it.
type Enricher interface {
	// Enrich submits {title, content} and returns the summary and
	// sentiment produced by the workflow.
	Enrich(ctx context.Context, title, content string) (*domain.Enrichment, error)
}
