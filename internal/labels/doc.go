// Package labels wraps the Google Drive Labels API for label schema lookups.
//
// The expiration pipeline only needs field IDs, but bulk label application
// has to know each field's declared value type to build the right
// modification, and the CLI uses the schema for human-readable output.
package labels
