package labelfield

import "fmt"

// DateParts is a structured calendar date as stored in a label date field.
type DateParts struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// User identifies a person referenced by a label user field.
type User struct {
	// Email is the user's email address
	Email string `json:"email"`

	// DisplayName is the user's display name, if known
	DisplayName string `json:"displayName,omitempty"`
}

// Value is a single label field value as it appears on a file. A field can
// carry its payload in several shapes depending on the field type and on how
// the label was applied; exactly one of the members below is normally set,
// but extraction tolerates any combination.
type Value struct {
	// DateParts is set when the field carries a structured date
	DateParts *DateParts `json:"dateParts,omitempty"`

	// DateStrings is set when the field carries preformatted date strings
	DateStrings []string `json:"dateStrings,omitempty"`

	// Users is set when the field carries a list of users
	Users []User `json:"users,omitempty"`

	// User is set when the field carries a single user object
	User *User `json:"user,omitempty"`

	// Text is set when the field carries a bare string
	Text string `json:"text,omitempty"`

	// Selections is set when the field carries selection choice IDs
	Selections []string `json:"selections,omitempty"`

	// Integer is set when the field carries an integer
	Integer *int64 `json:"integer,omitempty"`
}

// Extracted holds the two values the expiration pipeline cares about,
// normalized from whatever shapes the underlying fields carried. Either
// member may be empty when the field was absent or malformed.
type Extracted struct {
	// ExpirationDate is the expiration date in yyyy-mm-dd form, or empty
	ExpirationDate string `json:"expirationDate,omitempty"`

	// SignatoryEmail is the responsible party's email, or empty
	SignatoryEmail string `json:"signatoryEmail,omitempty"`
}

// Extract normalizes the raw field values of a file into an Extracted pair.
// The expiration field resolves structured date parts first (formatted
// yyyy-mm-dd, zero padded), then the first preformatted date string verbatim.
// The signatory field resolves a user list (first entry's email), then a
// single user object, then a bare string taken as-is. Extract never fails;
// anything unresolvable yields an empty string.
func Extract(fields map[string]Value, expirationFieldID, signatoryFieldID string) Extracted {
	var out Extracted

	if v, ok := fields[expirationFieldID]; ok {
		out.ExpirationDate = expirationDate(v)
	}
	if v, ok := fields[signatoryFieldID]; ok {
		out.SignatoryEmail = signatoryEmail(v)
	}

	return out
}

func expirationDate(v Value) string {
	if v.DateParts != nil {
		return FormatDate(*v.DateParts)
	}
	if len(v.DateStrings) > 0 {
		return v.DateStrings[0]
	}
	return ""
}

func signatoryEmail(v Value) string {
	if len(v.Users) > 0 {
		return v.Users[0].Email
	}
	if v.User != nil {
		return v.User.Email
	}
	return v.Text
}

// FormatDate renders date parts as yyyy-mm-dd with zero padding.
func FormatDate(d DateParts) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
