// Package domain defines the core business entities for Dailybrief.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A news article from either storage tier
//   - Interaction: The per-user read/saved flags for an article
//   - Preferences: A user's topic/keyword/source selections
//   - Session: An authenticated user session
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
