package domain

// Enrichment is the AI pipeline's output for one article: a short summary
// plus a sentiment tag and its justification.
type Enrichment struct {
	// Summary is a concise summary of the article.
	Summary string

	// Sentiment is the detected tone.
	Sentiment Sentiment

	// SentimentExplanation is a one-line justification of the tag.
	SentimentExplanation string
}
