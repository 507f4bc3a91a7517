package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dailybrief-labs/dailybrief-cli/internal/core/domain"
)

// currentUserID resolves the signed-in user's id, refreshing the session
// if needed.
func currentUserID(ctx context.Context) (string, error) {
	if sessionService == nil {
		return "", errors.New("session service not configured")
	}

	session, err := sessionService.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return "", fmt.Errorf("not signed in; run 'dailybrief login' first")
		}
		return "", err
	}
	return session.User.ID, nil
}

// optionalUserID resolves the signed-in user's id, or empty when no
// session exists. Local-only operations work without one.
func optionalUserID(ctx context.Context) string {
	if sessionService == nil {
		return ""
	}
	session, err := sessionService.Current(ctx)
	if err != nil {
		return ""
	}
	return session.User.ID
}

// resolveArticle loads the article for an interaction command, allowing
// unauthenticated access to device-authored articles.
func resolveArticle(ctx context.Context, articleID string) (string, *domain.FeedArticle, error) {
	if feedService == nil {
		return "", nil, errors.New("feed service not configured")
	}

	var userID string
	if domain.OriginForID(articleID) == domain.OriginRemote {
		id, err := currentUserID(ctx)
		if err != nil {
			return "", nil, err
		}
		userID = id
	} else {
		userID = optionalUserID(ctx)
	}

	item, err := feedService.Get(ctx, userID, articleID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load article: %w", err)
	}
	return userID, item, nil
}

// printFeed renders articles as an indexed list with interaction markers.
func printFeed(cmd *cobra.Command, feed []domain.FeedArticle) {
	if len(feed) == 0 {
		cmd.Println("No articles.")
		return
	}

	for i, item := range feed {
		marker := " "
		if !item.Interaction.IsRead {
			marker = "*"
		}
		saved := ""
		if item.Interaction.IsSaved {
			saved = " [saved]"
		}

		cmd.Printf("%s [%d] %s%s\n", marker, i+1, item.Title, saved)
		cmd.Printf("      %s", item.Source)
		if !item.PublishedAt.IsZero() {
			cmd.Printf(" - %s", item.PublishedAt.Format("2006-01-02 15:04"))
		}
		if item.Sentiment != "" {
			cmd.Printf(" - %s", item.Sentiment)
		}
		cmd.Println()
		cmd.Printf("      id: %s\n", item.ID)
		if item.Summary != "" {
			cmd.Printf("      %s\n", item.Summary)
		}
		cmd.Println()
	}
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
