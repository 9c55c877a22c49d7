// Package google_tools provides MCP tools for the Google OAuth flow: one to
// obtain the authorization URL and one to exchange the pasted authorization
// code for a stored token.
package google_tools
