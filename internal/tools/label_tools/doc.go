// Package label_tools exposes the expiration pipeline over MCP: scanning
// labeled files, writing the report sheet, notifying signatories, applying
// label field values (single and CSV batch) and inspecting label schemas.
//
// Read-only servers only register the scan and schema tools; everything
// that mutates Drive, Sheets or sends email stays unregistered.
package label_tools
