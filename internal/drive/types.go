package drive

import (
	"github.com/teemow/labelguard/internal/labelfield"
)

// FileInfo represents metadata about a file or folder in Google Drive,
// including the label field values attached to it.
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// WebViewLink is a link for opening the file in a relevant Google editor or viewer
	WebViewLink string `json:"webViewLink,omitempty"`

	// Fields holds the label field values keyed by field ID
	Fields map[string]labelfield.Value `json:"fields,omitempty"`
}

// IsFolder reports whether the file is a Drive folder.
func (f *FileInfo) IsFolder() bool {
	return f.MimeType == FolderMimeType
}

// Query describes a label-scoped file search.
type Query struct {
	// LabelID is the Drive label whose files are searched (required)
	LabelID string

	// FolderID optionally restricts results to direct children of a folder
	FolderID string

	// PageSize is the page size for each list call (default 100, max 1000)
	PageSize int64
}

// FieldType identifies the declared value type of a label field, as reported
// by the Drive Labels API. It decides which typed modification is sent when
// a field value is applied.
type FieldType string

const (
	FieldTypeText      FieldType = "TEXT"
	FieldTypeLongText  FieldType = "LONG_TEXT"
	FieldTypeInteger   FieldType = "INTEGER"
	FieldTypeDate      FieldType = "DATE"
	FieldTypeUser      FieldType = "USER"
	FieldTypeSelection FieldType = "SELECTION"
)
