package bulk

import (
	"context"
	"fmt"

	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/labels"
	"github.com/teemow/labelguard/internal/logging"
)

// Applier performs one assignment.
type Applier interface {
	Apply(ctx context.Context, a Assignment) error
}

// RowError records a single failed assignment.
type RowError struct {
	// Row is the 1-based position within the parsed assignments
	Row int `json:"row"`

	// FileID is the file the assignment targeted
	FileID string `json:"fileId"`

	// Error is the failure message
	Error string `json:"error"`
}

// Summary aggregates the outcome of a batch.
type Summary struct {
	Total     int        `json:"total"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors,omitempty"`
}

// ApplyAll runs every assignment through the applier. A failed row is
// recorded and the batch continues.
func ApplyAll(ctx context.Context, applier Applier, assignments []Assignment, logger logging.Logger) *Summary {
	summary := &Summary{Total: len(assignments)}

	for i, a := range assignments {
		if err := applier.Apply(ctx, a); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, RowError{
				Row:    i + 1,
				FileID: a.FileID,
				Error:  err.Error(),
			})
			logger.Warn("assignment failed",
				logging.KeyFile, a.FileID,
				logging.KeyLabel, a.LabelID,
				logging.KeyError, err.Error())
			continue
		}
		summary.Succeeded++
	}

	return summary
}

// labelGetter is the slice of the labels client the applier needs.
type labelGetter interface {
	GetLabel(ctx context.Context, labelID string) (*labels.Label, error)
}

// fieldApplier is the slice of the drive client the applier needs.
type fieldApplier interface {
	ApplyLabelField(ctx context.Context, fileID, labelID, fieldID string, fieldType drive.FieldType, value string) error
}

// LabelApplier resolves each assignment's field type from the label schema
// and applies the value through the Drive API. Schemas are fetched once per
// label and cached for the batch.
type LabelApplier struct {
	drive  fieldApplier
	labels labelGetter

	schemas map[string]*labels.Label
}

// NewLabelApplier creates an applier backed by the Drive and Labels clients.
func NewLabelApplier(driveClient fieldApplier, labelsClient labelGetter) *LabelApplier {
	return &LabelApplier{
		drive:   driveClient,
		labels:  labelsClient,
		schemas: make(map[string]*labels.Label),
	}
}

// Apply resolves the field's declared type and sets the value on the file.
func (a *LabelApplier) Apply(ctx context.Context, assignment Assignment) error {
	if assignment.FieldID == "" {
		return fmt.Errorf("fieldId is required")
	}

	schema, err := a.schema(ctx, assignment.LabelID)
	if err != nil {
		return err
	}

	field := schema.FieldByID(assignment.FieldID)
	if field == nil {
		return fmt.Errorf("field %s not found on label %s", assignment.FieldID, assignment.LabelID)
	}

	fileID := drive.ExtractFileID(assignment.FileID)
	return a.drive.ApplyLabelField(ctx, fileID, assignment.LabelID, assignment.FieldID, field.Type, assignment.Value)
}

func (a *LabelApplier) schema(ctx context.Context, labelID string) (*labels.Label, error) {
	if schema, ok := a.schemas[labelID]; ok {
		return schema, nil
	}
	schema, err := a.labels.GetLabel(ctx, labelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve label schema: %w", err)
	}
	a.schemas[labelID] = schema
	return schema, nil
}
