// Package google provides OAuth2 authentication and token management for
// Google APIs.
//
// Tokens are stored per account in the user cache directory; the
// TokenProvider interface allows other token sources to be plugged in.
package google
