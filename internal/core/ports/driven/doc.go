// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - KeyValueStore: Durable string-keyed storage (device identity, local articles)
//   - DeviceIdentity: Stable per-device identifier
//   - LocalArticleStore: Device-authored article persistence
//   - RemoteArticleSource: Backend article feed and interaction upserts
//   - PreferenceStore: Per-user preference persistence
//   - AuthProvider: Sign-up/sign-in/session operations
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Enricher: AI summarisation/sentiment webhook
//   - Clipboard: System clipboard for sharing
package driven
