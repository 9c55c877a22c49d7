package label_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
	"github.com/teemow/labelguard/internal/pipeline"
	"github.com/teemow/labelguard/internal/server"
	"github.com/teemow/labelguard/internal/tools/common"
)

// scanResult is the JSON payload returned by labels_scan_expiring.
type scanResult struct {
	Scanned   int                   `json:"scanned"`
	Expiring  int                   `json:"expiring"`
	Days      int                   `json:"days"`
	Documents []labelfield.Document `json:"documents"`
}

// runScan performs the shared scan-and-filter step behind the scan, report
// and notify tools.
func runScan(ctx context.Context, sa scanArgs, sc *server.ServerContext) (all, expiring []labelfield.Document, err error) {
	driveClient, err := getDriveClient(sa.account, sc)
	if err != nil {
		return nil, nil, err
	}

	scanner := &pipeline.DriveScanner{
		Drive:             driveClient,
		LabelID:           sa.labelID,
		FolderID:          sa.folderID,
		ExpirationFieldID: sa.expirationFieldID,
		SignatoryFieldID:  sa.signatoryFieldID,
	}

	all, err = scanner.Scan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}
	sc.Metrics().RecordFilesScanned(ctx, len(all))

	expiring = labelfield.FilterExpiring(all, sa.days, time.Now(), logging.DefaultLogger())
	return all, expiring, nil
}

// scanArgOptions are the argument declarations shared by the scan-based tools.
func scanArgOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("labelId",
			mcp.Description("Drive label ID to scan for (default: configured label)"),
		),
		mcp.WithString("folderId",
			mcp.Description("Folder ID or URL to restrict the scan to, searched recursively (default: whole corpus)"),
		),
		mcp.WithString("expirationFieldId",
			mcp.Description("Label field holding the expiration date (default: configured field)"),
		),
		mcp.WithString("signatoryFieldId",
			mcp.Description("Label field naming the signatory (default: configured field)"),
		),
		mcp.WithNumber("days",
			mcp.Description("Look-ahead window in days (default: configured threshold)"),
		),
	}
}

// registerScanTools registers the scan, report and notify tools
func registerScanTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Scan tool (read-only, always available)
	scanOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Scan Drive for labeled documents and list the ones whose expiration date falls within the look-ahead window"),
	}, scanArgOptions()...)
	scanTool := mcp.NewTool("labels_scan_expiring", scanOpts...)

	s.AddTool(scanTool, common.InstrumentedToolHandlerWithService("labels_scan_expiring", "drive", "files.list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		sa, err := parseScanArgs(args, sc.Config())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		all, expiring, err := runScan(ctx, sa, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		payload := scanResult{
			Scanned:   len(all),
			Expiring:  len(expiring),
			Days:      sa.days,
			Documents: expiring,
		}
		result, _ := json.MarshalIndent(payload, "", "  ")

		return mcp.NewToolResultText(string(result)), nil
	}))

	// The report and notify tools mutate external state
	if readOnly {
		return nil
	}

	reportOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Scan for expiring documents and replace the report sheet with the result"),
		mcp.WithString("spreadsheetId",
			mcp.Description("Spreadsheet to write the report to (default: configured spreadsheet)"),
		),
		mcp.WithString("sheetName",
			mcp.Description("Sheet tab for the report (default: configured name)"),
		),
	}, scanArgOptions()...)
	reportTool := mcp.NewTool("labels_write_report", reportOpts...)

	s.AddTool(reportTool, common.InstrumentedToolHandlerWithService("labels_write_report", "sheets", "values.update", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		sa, err := parseScanArgs(args, sc.Config())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		spreadsheetID := stringArg(args, "spreadsheetId", sc.Config().SpreadsheetID)
		if spreadsheetID == "" {
			return mcp.NewToolResultError("spreadsheetId is required"), nil
		}
		sheetName := stringArg(args, "sheetName", sc.Config().SheetName)

		sheetsClient, err := getSheetsClient(sa.account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		_, expiring, err := runScan(ctx, sa, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := sheetsClient.WriteReport(ctx, spreadsheetID, sheetName, expiring); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to write report: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Report written: %d expiring documents on sheet %q", len(expiring), sheetName)), nil
	}))

	notifyOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Scan for expiring documents and email each signatory. Invoking this tool is the confirmation to send."),
		mcp.WithString("cc",
			mcp.Description("Address carbon-copied on every notice (default: configured CC)"),
		),
	}, scanArgOptions()...)
	notifyTool := mcp.NewTool("labels_notify_signatories", notifyOpts...)

	s.AddTool(notifyTool, common.InstrumentedToolHandlerWithService("labels_notify_signatories", "gmail", "messages.send", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		sa, err := parseScanArgs(args, sc.Config())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		gmailClient, err := getGmailClient(sa.account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		_, expiring, err := runScan(ctx, sa, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		cc := sc.Config().CC()
		if ccArg := stringArg(args, "cc", ""); ccArg != "" {
			cc = []string{ccArg}
		}

		notifier := &pipeline.GmailNotifier{
			Gmail:   gmailClient,
			CC:      cc,
			Today:   time.Now(),
			Logger:  logging.DefaultLogger(),
			Metrics: sc.Metrics(),
		}
		sent := notifier.Notify(ctx, expiring)

		return mcp.NewToolResultText(fmt.Sprintf("Notified %d of %d expiring documents", sent, len(expiring))), nil
	}))

	return nil
}
