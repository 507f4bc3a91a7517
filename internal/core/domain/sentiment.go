package domain

// Sentiment classifies the tone of an article as judged by the
// enrichment pipeline.
type Sentiment string

// Recognised sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid returns true if the sentiment is recognised.
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Sentiment) String() string {
	return string(s)
}
