// Package labelfield contains the pure domain logic for Drive label field
// values: normalizing the shapes a label field can take into the expiration
// date and signatory email the rest of the application works with, and
// classifying documents by expiration window.
//
// Nothing in this package talks to the network. Field values arrive already
// decoded from the Drive API (or from tests) and extraction never fails;
// absent or malformed values degrade to empty strings.
package labelfield
