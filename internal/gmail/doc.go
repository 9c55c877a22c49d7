// Package gmail sends expiration notices through the Gmail API.
//
// The client wraps the authenticated Users service for one account and
// builds RFC 2822 messages by hand, the same way the Gmail API expects them
// in the raw base64url form. NotifyExpiring drives one email per document
// signatory and keeps going when an individual send fails.
package gmail
