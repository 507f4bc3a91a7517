// Package workflow provides the AI enrichment adapter over an n8n-style
// workflow webhook. The workflow wraps the model call; the adapter posts
// the article text and parses the plain-text completion the workflow
// returns.
package workflow
