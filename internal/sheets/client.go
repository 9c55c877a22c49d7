package sheets

import (
	"context"
	"fmt"

	sheets "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"

	"github.com/teemow/labelguard/internal/google"
	"github.com/teemow/labelguard/internal/labelfield"
)

// Client wraps the Google Sheets service
type Client struct {
	svc     *sheets.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// NewClientForAccount creates a new Sheets client with OAuth2 authentication for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// NewClient creates a new Sheets client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// WriteReport replaces the report on the named sheet with the given
// documents. The sheet is created if the spreadsheet does not have it yet.
// Processed marks are keyed by file ID, not by row number: before the
// rewrite they are read back and re-anchored next to their document's new
// row, and marks whose document left the report are dropped.
func (c *Client) WriteReport(ctx context.Context, spreadsheetID, sheetName string, docs []labelfield.Document) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if sheetName == "" {
		return fmt.Errorf("sheetName is required")
	}

	sheetID, err := c.ensureSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}

	marks, err := c.readProcessedMarks(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}

	clearRange := fmt.Sprintf("%s!%s", sheetName, clearedRange)
	_, err = c.svc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear report range: %w", err)
	}

	values := &sheets.ValueRange{Values: buildReportRows(docs, marks)}
	_, err = c.svc.Spreadsheets.Values.Update(spreadsheetID, fmt.Sprintf("%s!A1", sheetName), values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write report rows: %w", err)
	}

	if err := c.formatReport(ctx, spreadsheetID, sheetID); err != nil {
		return err
	}

	return nil
}

// readProcessedMarks reads the current report and maps each Processed mark
// to the file ID on its row.
func (c *Client) readProcessedMarks(ctx context.Context, spreadsheetID, sheetName string) (map[string]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, fmt.Sprintf("%s!%s", sheetName, markedRange)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read processed marks: %w", err)
	}
	return marksFromRows(resp.Values), nil
}

// MarkProcessed writes a note into the Processed column of the report row
// whose ID column matches fileID.
func (c *Client) MarkProcessed(ctx context.Context, spreadsheetID, sheetName, fileID, note string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, fmt.Sprintf("%s!B:B", sheetName)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read report IDs: %w", err)
	}

	row := -1
	for i, cells := range resp.Values {
		if len(cells) == 0 {
			continue
		}
		if id, ok := cells[0].(string); ok && id == fileID {
			row = i + 1 // sheet rows are 1-based
			break
		}
	}
	if row < 0 {
		return fmt.Errorf("file %s not found in report", fileID)
	}

	target := fmt.Sprintf("%s!%s%d", sheetName, processedColumn, row)
	values := &sheets.ValueRange{Values: [][]interface{}{{note}}}
	_, err = c.svc.Spreadsheets.Values.Update(spreadsheetID, target, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to mark row processed: %w", err)
	}

	return nil
}

// ensureSheet returns the numeric sheet ID of the named sheet, adding the
// sheet to the spreadsheet if it is missing.
func (c *Client) ensureSheet(ctx context.Context, spreadsheetID, sheetName string) (int64, error) {
	spreadsheet, err := c.svc.Spreadsheets.Get(spreadsheetID).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == sheetName {
			return s.Properties.SheetId, nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: sheetName},
				},
			},
		},
	}
	resp, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to add sheet %s: %w", sheetName, err)
	}
	if len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, fmt.Errorf("add sheet reply missing sheet properties")
	}

	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

// formatReport bolds the header row, applies a yyyy-mm-dd number format to
// the date column and auto-sizes the columns.
func (c *Client) formatReport(ctx context.Context, spreadsheetID string, sheetID int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:       sheetID,
						StartRowIndex: 0,
						EndRowIndex:   1,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{Bold: true},
						},
					},
					Fields: "userEnteredFormat.textFormat.bold",
				},
			},
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          sheetID,
						StartRowIndex:    1,
						StartColumnIndex: dateColumnIndex,
						EndColumnIndex:   dateColumnIndex + 1,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							NumberFormat: &sheets.NumberFormat{
								Type:    "DATE",
								Pattern: "yyyy-mm-dd",
							},
						},
					},
					Fields: "userEnteredFormat.numberFormat",
				},
			},
			{
				AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
					Dimensions: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "COLUMNS",
						StartIndex: 0,
						EndIndex:   6,
					},
				},
			},
		},
	}

	_, err := c.svc.Spreadsheets.BatchUpdate(spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	return nil
}
