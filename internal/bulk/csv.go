package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// expectedHeader is the mandatory first row of an assignment CSV.
var expectedHeader = []string{"fileId", "labelId", "fieldId", "value"}

// Assignment is one row of the batch: set one field of one label on one file.
// FileID may be a bare ID or any Drive URL form.
type Assignment struct {
	FileID  string
	LabelID string
	FieldID string
	Value   string
}

// ParseAssignments reads an assignment CSV. The header row is required and
// must match fileId,labelId,fieldId,value (case-insensitive). Rows with a
// blank fileId or labelId are skipped.
func ParseAssignments(r io.Reader) ([]Assignment, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: header row %s is required", strings.Join(expectedHeader, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var assignments []Assignment
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		a := Assignment{
			FileID:  strings.TrimSpace(record[0]),
			LabelID: strings.TrimSpace(record[1]),
			FieldID: strings.TrimSpace(record[2]),
			Value:   strings.TrimSpace(record[3]),
		}
		if a.FileID == "" || a.LabelID == "" {
			continue
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("invalid CSV header: expected %s", strings.Join(expectedHeader, ","))
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), expectedHeader[i]) {
			return fmt.Errorf("invalid CSV header column %d: got %q, expected %q", i+1, col, expectedHeader[i])
		}
	}
	return nil
}
