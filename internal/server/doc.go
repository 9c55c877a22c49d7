// Package server holds the shared state of the MCP server: the runtime
// configuration, the metrics recorder and one lazily created Google client
// per service and account.
package server
