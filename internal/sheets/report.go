package sheets

import (
	"github.com/teemow/labelguard/internal/labelfield"
)

// Report column layout. The Processed column sits directly after the report
// columns; the pipeline only carries its marks over, it never sets them.
var reportHeader = []interface{}{"Name", "ID", "ExpirationDate", "SignatoryEmail", "URL"}

const (
	// clearedRange covers the report columns and the Processed column, so a
	// rewrite leaves no stale marks on renumbered rows
	clearedRange = "A:F"

	// markedRange is read before a rewrite to re-anchor Processed marks
	markedRange = "B:F"

	// processedColumn is where MarkProcessed writes
	processedColumn = "F"

	// dateColumnIndex is the zero-based index of the ExpirationDate column
	dateColumnIndex = 2
)

// buildReportRows renders documents into sheet rows, header first, in the
// order given. A document whose ID has a Processed mark gets the mark back
// in its new row.
func buildReportRows(docs []labelfield.Document, marks map[string]string) [][]interface{} {
	rows := make([][]interface{}, 0, len(docs)+1)
	rows = append(rows, reportHeader)
	for _, doc := range docs {
		row := []interface{}{
			doc.Name,
			doc.ID,
			doc.ExpirationDate,
			doc.SignatoryEmail,
			doc.URL,
		}
		if mark, ok := marks[doc.ID]; ok && mark != "" {
			row = append(row, mark)
		}
		rows = append(rows, row)
	}
	return rows
}

// marksFromRows extracts the Processed marks from a B:F read, keyed by the
// ID column. Rows without a mark are skipped.
func marksFromRows(rows [][]interface{}) map[string]string {
	marks := make(map[string]string)
	for _, cells := range rows {
		if len(cells) < 5 {
			continue
		}
		id, ok := cells[0].(string)
		if !ok || id == "" {
			continue
		}
		mark, ok := cells[4].(string)
		if !ok || mark == "" {
			continue
		}
		marks[id] = mark
	}
	return marks
}
