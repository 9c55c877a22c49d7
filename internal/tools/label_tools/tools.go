package label_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/labelguard/internal/config"
	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/gmail"
	"github.com/teemow/labelguard/internal/google"
	"github.com/teemow/labelguard/internal/labels"
	"github.com/teemow/labelguard/internal/server"
	"github.com/teemow/labelguard/internal/sheets"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// stringArg returns the named string argument, falling back to def when it
// is absent or empty.
func stringArg(args map[string]interface{}, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// intArg returns the named numeric argument, falling back to def. JSON
// numbers arrive as float64.
func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return def
}

// authRequiredError builds the guidance returned when an account has no token.
func authRequiredError(account string) error {
	authURL := google.GetAuthenticationErrorMessage(account)
	return fmt.Errorf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google services (Drive, Sheets, Gmail)
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the google_save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
}

// getDriveClient retrieves or creates a Drive client for the specified account
func getDriveClient(account string, sc *server.ServerContext) (*drive.Client, error) {
	client := sc.DriveClientForAccount(account)
	if client == nil {
		return nil, authRequiredError(account)
	}
	return client, nil
}

// getLabelsClient retrieves or creates a Drive Labels client for the specified account
func getLabelsClient(account string, sc *server.ServerContext) (*labels.Client, error) {
	client := sc.LabelsClientForAccount(account)
	if client == nil {
		return nil, authRequiredError(account)
	}
	return client, nil
}

// getSheetsClient retrieves or creates a Sheets client for the specified account
func getSheetsClient(account string, sc *server.ServerContext) (*sheets.Client, error) {
	client := sc.SheetsClientForAccount(account)
	if client == nil {
		return nil, authRequiredError(account)
	}
	return client, nil
}

// getGmailClient retrieves or creates a Gmail client for the specified account
func getGmailClient(account string, sc *server.ServerContext) (*gmail.Client, error) {
	client := sc.GmailClientForAccount(account)
	if client == nil {
		return nil, authRequiredError(account)
	}
	return client, nil
}

// scanArgs collects everything a scan needs, with config defaults filled in.
type scanArgs struct {
	account           string
	labelID           string
	folderID          string
	expirationFieldID string
	signatoryFieldID  string
	days              int
}

// parseScanArgs resolves the scan arguments against the configured defaults.
func parseScanArgs(args map[string]interface{}, cfg *config.Config) (scanArgs, error) {
	sa := scanArgs{
		account:           getAccountFromArgs(args),
		labelID:           stringArg(args, "labelId", cfg.LabelID),
		folderID:          stringArg(args, "folderId", cfg.FolderID),
		expirationFieldID: stringArg(args, "expirationFieldId", cfg.ExpirationFieldID),
		signatoryFieldID:  stringArg(args, "signatoryFieldId", cfg.SignatoryFieldID),
		days:              intArg(args, "days", cfg.DaysThreshold),
	}

	if sa.labelID == "" {
		return sa, fmt.Errorf("labelId is required (argument or %s)", config.EnvLabelID)
	}
	if sa.expirationFieldID == "" {
		return sa, fmt.Errorf("expirationFieldId is required (argument or %s)", config.EnvExpirationFieldID)
	}
	if sa.days < 0 {
		return sa, fmt.Errorf("days must not be negative")
	}

	if sa.folderID != "" {
		sa.folderID = drive.ExtractFileID(sa.folderID)
	}

	return sa, nil
}

// RegisterLabelTools registers all label pipeline tools with the MCP server
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := registerScanTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register scan tools: %w", err)
	}

	if err := registerApplyTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register apply tools: %w", err)
	}

	return nil
}
