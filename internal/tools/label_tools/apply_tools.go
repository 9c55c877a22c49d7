package label_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/labelguard/internal/bulk"
	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/logging"
	"github.com/teemow/labelguard/internal/server"
	"github.com/teemow/labelguard/internal/tools/common"
)

// registerApplyTools registers the schema inspection and label mutation tools
func registerApplyTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Get label schema tool (read-only, always available)
	getLabelTool := mcp.NewTool("labels_get_label",
		mcp.WithDescription("Get a Drive label schema: title, description and field definitions with their value types"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("labelId",
			mcp.Description("Label ID, bare or in labels/<id> form (default: configured label)"),
		),
	)

	s.AddTool(getLabelTool, common.InstrumentedToolHandlerWithService("labels_get_label", "drivelabels", "labels.get", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		account := getAccountFromArgs(args)

		labelID := stringArg(args, "labelId", sc.Config().LabelID)
		if labelID == "" {
			return mcp.NewToolResultError("labelId is required"), nil
		}

		client, err := getLabelsClient(account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		label, err := client.GetLabel(ctx, labelID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get label: %v", err)), nil
		}

		result, _ := json.MarshalIndent(label, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	// The remaining tools mutate labels on files
	if readOnly {
		return nil
	}

	applyTool := mcp.NewTool("labels_apply",
		mcp.WithDescription("Set a label field value on a file, or unset a field, or remove the label entirely. The field's value type is resolved from the label schema."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileId",
			mcp.Required(),
			mcp.Description("File ID or any Drive/Docs/Sheets/Slides URL"),
		),
		mcp.WithString("labelId",
			mcp.Description("Label ID (default: configured label)"),
		),
		mcp.WithString("fieldId",
			mcp.Description("Field to set or unset. Required unless removing the label."),
		),
		mcp.WithString("value",
			mcp.Description("Value to set. Dates as yyyy-mm-dd, users as email addresses."),
		),
		mcp.WithBoolean("unset",
			mcp.Description("Unset the field instead of setting a value"),
		),
		mcp.WithBoolean("remove",
			mcp.Description("Remove the whole label from the file"),
		),
	)

	s.AddTool(applyTool, common.InstrumentedToolHandlerWithService("labels_apply", "drive", "files.modifyLabels", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		account := getAccountFromArgs(args)

		fileArg, ok := args["fileId"].(string)
		if !ok || fileArg == "" {
			return mcp.NewToolResultError("fileId is required"), nil
		}
		fileID := drive.ExtractFileID(fileArg)

		labelID := stringArg(args, "labelId", sc.Config().LabelID)
		if labelID == "" {
			return mcp.NewToolResultError("labelId is required"), nil
		}

		driveClient, err := getDriveClient(account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if remove, _ := args["remove"].(bool); remove {
			if err := driveClient.RemoveLabel(ctx, fileID, labelID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to remove label: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Removed label %s from file %s", labelID, fileID)), nil
		}

		fieldID := stringArg(args, "fieldId", "")
		if fieldID == "" {
			return mcp.NewToolResultError("fieldId is required unless remove is set"), nil
		}

		if unset, _ := args["unset"].(bool); unset {
			if err := driveClient.UnsetLabelField(ctx, fileID, labelID, fieldID); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to unset field: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Unset field %s of label %s on file %s", fieldID, labelID, fileID)), nil
		}

		value := stringArg(args, "value", "")
		if value == "" {
			return mcp.NewToolResultError("value is required unless unset or remove is set"), nil
		}

		labelsClient, err := getLabelsClient(account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		applier := bulk.NewLabelApplier(driveClient, labelsClient)
		err = applier.Apply(ctx, bulk.Assignment{
			FileID:  fileID,
			LabelID: labelID,
			FieldID: fieldID,
			Value:   value,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to apply field: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Set field %s of label %s on file %s", fieldID, labelID, fileID)), nil
	}))

	bulkApplyTool := mcp.NewTool("labels_bulk_apply",
		mcp.WithDescription("Apply label field values to many files from CSV content with columns fileId,labelId,fieldId,value. Rows fail independently; the summary lists every failure."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("csv",
			mcp.Required(),
			mcp.Description("CSV content including the header row"),
		),
	)

	s.AddTool(bulkApplyTool, common.InstrumentedToolHandlerWithService("labels_bulk_apply", "drive", "files.modifyLabels", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		account := getAccountFromArgs(args)

		csvContent, ok := args["csv"].(string)
		if !ok || csvContent == "" {
			return mcp.NewToolResultError("csv is required"), nil
		}

		assignments, err := bulk.ParseAssignments(strings.NewReader(csvContent))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to parse CSV: %v", err)), nil
		}

		driveClient, err := getDriveClient(account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		labelsClient, err := getLabelsClient(account, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		applier := bulk.NewLabelApplier(driveClient, labelsClient)
		summary := bulk.ApplyAll(ctx, applier, assignments, logging.DefaultLogger())

		result, _ := json.MarshalIndent(summary, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}))

	return nil
}
