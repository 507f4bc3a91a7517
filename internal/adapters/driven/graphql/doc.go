// Package graphql provides the backend article and preference adapters
// over a Hasura-style GraphQL endpoint.
//
// All operations go through a single POST endpoint carrying {query,
// variables}. GraphQL-level errors and non-200 responses both surface as
// *domain.TransportError; the adapter never retries.
package graphql
