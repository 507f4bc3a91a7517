package domain

// FilterOptions selects which feed articles to keep.
type FilterOptions struct {
	// Sentiments keeps only articles with one of these tags.
	// Empty means all sentiments pass.
	Sentiments []Sentiment

	// Topics is accepted for forward compatibility but articles carry no
	// topic attribute yet, so any non-empty selection matches nothing.
	Topics []string
}

// FilterArticles applies the options to a feed. Pure and order-preserving.
func FilterArticles(feed []FeedArticle, opts FilterOptions) []FeedArticle {
	if len(opts.Sentiments) == 0 && len(opts.Topics) == 0 {
		return feed
	}

	result := make([]FeedArticle, 0, len(feed))
	for _, item := range feed {
		if !matchesSentiment(item.Sentiment, opts.Sentiments) {
			continue
		}
		// No per-article topic attribute exists yet; a non-empty topic
		// selection excludes everything rather than guessing.
		if len(opts.Topics) > 0 {
			continue
		}
		result = append(result, item)
	}
	return result
}

func matchesSentiment(s Sentiment, selected []Sentiment) bool {
	if len(selected) == 0 {
		return true
	}
	for _, sel := range selected {
		if s == sel {
			return true
		}
	}
	return false
}
