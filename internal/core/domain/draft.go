package domain

import "strings"

// SummaryLength is how many characters of content the derived summary keeps.
const SummaryLength = 150

// LocalSentimentExplanation is the fixed explanation attached to
// device-authored articles, which skip AI enrichment.
const LocalSentimentExplanation = "Sentiment analysis not available for user-created articles"

// ArticleDraft is the authoring input before an article is synthesised.
type ArticleDraft struct {
	// Title is the headline. Required.
	Title string

	// Content is the full body text. Required.
	Content string

	// Source is the publication name. Required.
	Source string

	// Author is the optional byline; defaults to the signed-in user's
	// email when empty.
	Author string

	// ImageURL is an optional illustration.
	ImageURL string
}

// Validate checks the required fields, returning a ValidationError that
// names every missing field.
func (d *ArticleDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(d.Source) == "" {
		missing = append(missing, "source")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// DeriveSummary produces the feed summary for a draft: the first
// SummaryLength characters of content. The ellipsis marker is always
// appended, even when the content fits whole.
func (d *ArticleDraft) DeriveSummary() string {
	runes := []rune(d.Content)
	if len(runes) > SummaryLength {
		runes = runes[:SummaryLength]
	}
	return string(runes) + "..."
}
