package bulk

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/labels"
	"github.com/teemow/labelguard/internal/logging"
)

type fakeApplier struct {
	failFileIDs map[string]bool
	applied     []Assignment
}

func (f *fakeApplier) Apply(ctx context.Context, a Assignment) error {
	if f.failFileIDs[a.FileID] {
		return errors.New("permission denied")
	}
	f.applied = append(f.applied, a)
	return nil
}

func TestApplyAll(t *testing.T) {
	applier := &fakeApplier{failFileIDs: map[string]bool{"bad": true}}
	assignments := []Assignment{
		{FileID: "ok1", LabelID: "l", FieldID: "f", Value: "v"},
		{FileID: "bad", LabelID: "l", FieldID: "f", Value: "v"},
		{FileID: "ok2", LabelID: "l", FieldID: "f", Value: "v"},
	}

	summary := ApplyAll(context.Background(), applier, assignments, logging.DefaultLogger())

	if summary.Total != 3 || summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v, want total 3, succeeded 2, failed 1", summary)
	}
	if len(summary.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(summary.Errors))
	}
	if summary.Errors[0].Row != 2 || summary.Errors[0].FileID != "bad" {
		t.Errorf("unexpected error record: %+v", summary.Errors[0])
	}
	// The failing row must not stop the rest of the batch
	if len(applier.applied) != 2 {
		t.Errorf("applied %d rows, want 2", len(applier.applied))
	}
}

func TestApplyAll_Empty(t *testing.T) {
	summary := ApplyAll(context.Background(), &fakeApplier{}, nil, logging.DefaultLogger())
	if summary.Total != 0 || summary.Failed != 0 {
		t.Errorf("summary = %+v, want empty", summary)
	}
}

type fakeLabelGetter struct {
	labels map[string]*labels.Label
	calls  int
}

func (f *fakeLabelGetter) GetLabel(ctx context.Context, labelID string) (*labels.Label, error) {
	f.calls++
	if l, ok := f.labels[labelID]; ok {
		return l, nil
	}
	return nil, fmt.Errorf("label %s not found", labelID)
}

type fakeFieldApplier struct {
	fileIDs    []string
	fieldTypes []drive.FieldType
}

func (f *fakeFieldApplier) ApplyLabelField(ctx context.Context, fileID, labelID, fieldID string, fieldType drive.FieldType, value string) error {
	f.fileIDs = append(f.fileIDs, fileID)
	f.fieldTypes = append(f.fieldTypes, fieldType)
	return nil
}

func TestLabelApplier(t *testing.T) {
	getter := &fakeLabelGetter{labels: map[string]*labels.Label{
		"label1": {
			ID: "label1",
			Fields: []labels.Field{
				{ID: "expiry", Type: drive.FieldTypeDate},
				{ID: "notes", Type: drive.FieldTypeText},
			},
		},
	}}
	fields := &fakeFieldApplier{}
	applier := NewLabelApplier(fields, getter)

	err := applier.Apply(context.Background(), Assignment{
		FileID:  "https://drive.google.com/file/d/file1/view",
		LabelID: "label1",
		FieldID: "expiry",
		Value:   "2026-12-31",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(fields.fileIDs) != 1 || fields.fileIDs[0] != "file1" {
		t.Errorf("fileIDs = %v, want [file1] extracted from URL", fields.fileIDs)
	}
	if fields.fieldTypes[0] != drive.FieldTypeDate {
		t.Errorf("fieldType = %q, want DATE from schema", fields.fieldTypes[0])
	}
}

func TestLabelApplier_CachesSchema(t *testing.T) {
	getter := &fakeLabelGetter{labels: map[string]*labels.Label{
		"label1": {ID: "label1", Fields: []labels.Field{{ID: "f", Type: drive.FieldTypeText}}},
	}}
	applier := NewLabelApplier(&fakeFieldApplier{}, getter)

	for i := 0; i < 3; i++ {
		if err := applier.Apply(context.Background(), Assignment{FileID: "x", LabelID: "label1", FieldID: "f"}); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}

	if getter.calls != 1 {
		t.Errorf("GetLabel called %d times, want 1 (cached)", getter.calls)
	}
}

func TestLabelApplier_Errors(t *testing.T) {
	getter := &fakeLabelGetter{labels: map[string]*labels.Label{
		"label1": {ID: "label1", Fields: []labels.Field{{ID: "f", Type: drive.FieldTypeText}}},
	}}
	applier := NewLabelApplier(&fakeFieldApplier{}, getter)

	t.Run("missing fieldId", func(t *testing.T) {
		err := applier.Apply(context.Background(), Assignment{FileID: "x", LabelID: "label1"})
		if err == nil {
			t.Error("expected error for missing fieldId")
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		err := applier.Apply(context.Background(), Assignment{FileID: "x", LabelID: "nope", FieldID: "f"})
		if err == nil {
			t.Error("expected error for unknown label")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		err := applier.Apply(context.Background(), Assignment{FileID: "x", LabelID: "label1", FieldID: "nope"})
		if err == nil {
			t.Error("expected error for unknown field")
		}
	})
}
