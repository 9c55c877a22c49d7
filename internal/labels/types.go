package labels

import "github.com/teemow/labelguard/internal/drive"

// Label is a Drive label schema: its identity and fields.
type Label struct {
	// ID is the label ID (without the "labels/" prefix)
	ID string `json:"id"`

	// Title is the label's display title
	Title string `json:"title"`

	// Description is the label's description, if any
	Description string `json:"description,omitempty"`

	// Fields are the label's field definitions
	Fields []Field `json:"fields,omitempty"`
}

// Field is a single field definition of a label schema.
type Field struct {
	// ID is the field ID
	ID string `json:"id"`

	// DisplayName is the field's display name
	DisplayName string `json:"displayName"`

	// Type is the field's declared value type
	Type drive.FieldType `json:"type"`

	// Required indicates whether the field must be set when the label is applied
	Required bool `json:"required"`
}

// FieldByID returns the field definition with the given ID, or nil.
func (l *Label) FieldByID(fieldID string) *Field {
	for i := range l.Fields {
		if l.Fields[i].ID == fieldID {
			return &l.Fields[i]
		}
	}
	return nil
}
