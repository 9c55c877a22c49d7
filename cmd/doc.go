// Package cmd implements the command-line interface for labelguard.
//
// This package provides the following commands:
//   - scan: Run the expiration pipeline (scan, report, confirm, notify)
//   - bulk-apply: Apply label field values to many files from a CSV
//   - auth: Authorize a Google account from the terminal
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The scan command is the default command when no subcommand is specified.
package cmd
