package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentiment_IsValid(t *testing.T) {
	assert.True(t, SentimentPositive.IsValid())
	assert.True(t, SentimentNegative.IsValid())
	assert.True(t, SentimentNeutral.IsValid())
	assert.False(t, Sentiment("mixed").IsValid())
	assert.False(t, Sentiment("").IsValid())
}
