package drive

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/teemow/labelguard/internal/google"
	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// defaultPageSize is the page size used when a query does not set one
	defaultPageSize = 100
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
	logger  *slog.Logger
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return google.HasToken()
}

// NewClientForAccount creates a new Google Drive client with OAuth2 authentication for a specific account
// Returns an error if no valid token exists - use HasTokenForAccount() to check first
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
		logger:  slog.Default(),
	}, nil
}

// NewClient creates a new Google Drive client with OAuth2 authentication for the default account
// Returns an error if no valid token exists - use HasToken() to check first
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// newClientWithService wraps an already constructed Drive service.
func newClientWithService(service *drive.Service, account string) *Client {
	return &Client{
		service: service,
		account: account,
		logger:  slog.Default(),
	}
}

// GetFile retrieves metadata for a specific file, including its label values
// for the given label.
func (c *Client) GetFile(ctx context.Context, fileID, labelID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	call := c.service.Files.Get(fileID).
		Context(ctx).
		SupportsAllDrives(true).
		Fields("id, name, mimeType, webViewLink, labelInfo")
	if labelID != "" {
		call = call.IncludeLabels(labelID)
	}

	file, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// driveIDForFolder resolves the shared drive a folder belongs to. An empty
// drive ID means the folder lives in My Drive. Lookup failures degrade to
// the not-shared case so a search can still proceed against My Drive.
func (c *Client) driveIDForFolder(ctx context.Context, folderID string) string {
	folder, err := c.service.Files.Get(folderID).
		Context(ctx).
		SupportsAllDrives(true).
		Fields("id, driveId").
		Do()
	if err != nil {
		c.logger.Warn("shared drive lookup failed, treating folder as My Drive",
			logging.Folder(folderID),
			logging.Err(err))
		return ""
	}
	return folder.DriveId
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	info := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		WebViewLink: f.WebViewLink,
	}

	if f.LabelInfo == nil {
		return info
	}

	// A file carries at most the labels the list call asked for; all their
	// fields are merged into one map keyed by field ID.
	for _, label := range f.LabelInfo.Labels {
		for fieldID, field := range label.Fields {
			if info.Fields == nil {
				info.Fields = make(map[string]labelfield.Value)
			}
			info.Fields[fieldID] = convertFieldValue(field)
		}
	}

	return info
}

// convertFieldValue decodes a Drive label field into the shapes the
// labelfield package understands.
func convertFieldValue(f drive.LabelField) labelfield.Value {
	var v labelfield.Value

	if len(f.DateString) > 0 {
		v.DateStrings = append(v.DateStrings, f.DateString...)
	}
	for _, u := range f.User {
		if u == nil {
			continue
		}
		v.Users = append(v.Users, labelfield.User{
			Email:       u.EmailAddress,
			DisplayName: u.DisplayName,
		})
	}
	if len(f.Text) > 0 {
		v.Text = f.Text[0]
	}
	if len(f.Selection) > 0 {
		v.Selections = append(v.Selections, f.Selection...)
	}
	if len(f.Integer) > 0 {
		v.Integer = &f.Integer[0]
	}

	return v
}

// parseInteger parses an integer field value from its string form.
func parseInteger(value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q: %w", value, err)
	}
	return n, nil
}
