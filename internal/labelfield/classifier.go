package labelfield

import (
	"time"

	"github.com/teemow/labelguard/internal/logging"
)

// DateLayout is the canonical date format used throughout the application.
const DateLayout = "2006-01-02"

// Document is a file together with its extracted expiration metadata. This is
// the unit the report and notification stages operate on.
type Document struct {
	// ID is the Drive file ID
	ID string `json:"id"`

	// Name is the file name
	Name string `json:"name"`

	// URL is a link for opening the file
	URL string `json:"url,omitempty"`

	// ExpirationDate is the expiration date in yyyy-mm-dd form, or empty
	ExpirationDate string `json:"expirationDate,omitempty"`

	// SignatoryEmail is the responsible party's email, or empty
	SignatoryEmail string `json:"signatoryEmail,omitempty"`
}

// FilterExpiring returns the documents whose expiration date falls on or
// before today plus days. Documents without an expiration date are skipped.
// There is no lower bound: dates far in the past are still "expiring" and
// stay in the result. Input order is preserved and the input slice is not
// modified.
//
// Documents whose date cannot be parsed as yyyy-mm-dd are excluded and logged
// at Warn level so a single bad record neither fails the batch nor silently
// disappears.
func FilterExpiring(docs []Document, days int, today time.Time, logger logging.Logger) []Document {
	cutoff := midnight(today).AddDate(0, 0, days)

	var out []Document
	for _, doc := range docs {
		if doc.ExpirationDate == "" {
			continue
		}
		exp, err := time.Parse(DateLayout, doc.ExpirationDate)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping document with unparsable expiration date",
					logging.KeyFile, doc.ID,
					"value", doc.ExpirationDate)
			}
			continue
		}
		if !exp.After(cutoff) {
			out = append(out, doc)
		}
	}
	return out
}

// IsExpired reports whether the document's expiration date lies strictly
// before today. Documents without a parsable date are never expired.
func IsExpired(doc Document, today time.Time) bool {
	exp, err := time.Parse(DateLayout, doc.ExpirationDate)
	if err != nil {
		return false
	}
	return exp.Before(midnight(today))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
