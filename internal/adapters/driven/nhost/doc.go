// Package nhost provides the authentication adapter for an Nhost-style
// auth service (email-password sign-in, refresh tokens, email
// verification) over its REST endpoints.
package nhost
