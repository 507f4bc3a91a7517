package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
	"github.com/dailybrief-labs/dailybrief-cli/internal/core/ports/driven"
)

// Ensure Enricher implements the interface.
var _ driven.Enricher = (*Enricher)(nil)

// DefaultTimeout allows for the workflow's model call.
const DefaultTimeout = 120 * time.Second

// Config holds configuration for the enrichment webhook.
type Config struct {
	// WebhookURL is the workflow's webhook endpoint (required).
	WebhookURL string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Enricher submits article text to the enrichment workflow.
type Enricher struct {
	client     *http.Client
	webhookURL string
}

// NewEnricher creates a new workflow enricher.
func NewEnricher(cfg Config) (*Enricher, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("workflow: webhook URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Enricher{
		client:     &http.Client{Timeout: cfg.Timeout},
		webhookURL: cfg.WebhookURL,
	}, nil
}

// enrichRequest is the webhook payload.
type enrichRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Enrich posts the article text and parses the workflow's completion.
func (e *Enricher) Enrich(ctx context.Context, title, content string) (*domain.Enrichment, error) {
	jsonBody, err := json.Marshal(enrichRequest{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.webhookURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "enrich article", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "enrich article", Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{
			Op:  "enrich article",
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	enrichment := ParseCompletion(string(body))
	return &enrichment, nil
}

// ParseCompletion extracts the enrichment from a free-form completion.
// The workflow's prompt asks for summary, sentiment and explanation on
// successive lines, but the model is not always obedient: blank lines are
// dropped, the sentiment line is keyword-scanned, and anything missing
// falls back to neutral.
func ParseCompletion(completion string) domain.Enrichment {
	var lines []string
	for _, line := range strings.Split(completion, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	enrichment := domain.Enrichment{Sentiment: domain.SentimentNeutral}

	if len(lines) > 0 {
		enrichment.Summary = lines[0]
	}
	if len(lines) > 1 {
		switch {
		case strings.Contains(strings.ToLower(lines[1]), "positive"):
			enrichment.Sentiment = domain.SentimentPositive
		case strings.Contains(strings.ToLower(lines[1]), "negative"):
			enrichment.Sentiment = domain.SentimentNegative
		}
	}
	if len(lines) > 2 {
		enrichment.SentimentExplanation = lines[2]
	}

	return enrichment
}
