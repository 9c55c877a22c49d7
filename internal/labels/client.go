package labels

import (
	"context"
	"fmt"
	"strings"

	drivelabels "google.golang.org/api/drivelabels/v2"
	"google.golang.org/api/option"

	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/google"
)

// Client wraps the Google Drive Labels service
type Client struct {
	svc     *drivelabels.Service
	account string // The account this client is associated with
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

// NewClientForAccount creates a new Drive Labels client with OAuth2 authentication for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	svc, err := drivelabels.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive Labels service: %w", err)
	}

	return &Client{
		svc:     svc,
		account: account,
	}, nil
}

// NewClient creates a new Drive Labels client with OAuth2 authentication for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// GetLabel retrieves a label schema by ID. The ID may be given bare or in
// its "labels/<id>" resource form.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	if labelID == "" {
		return nil, fmt.Errorf("labelID is required")
	}

	name := labelID
	if !strings.HasPrefix(name, "labels/") {
		name = "labels/" + name
	}

	label, err := c.svc.Labels.Get(name).
		Context(ctx).
		View("LABEL_VIEW_FULL").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get label %s: %w", labelID, err)
	}

	return convertToLabel(label), nil
}

// convertToLabel converts a Drive Labels API label to our Label type
func convertToLabel(l *drivelabels.GoogleAppsDriveLabelsV2Label) *Label {
	label := &Label{
		ID: l.Id,
	}

	if l.Properties != nil {
		label.Title = l.Properties.Title
		label.Description = l.Properties.Description
	}

	for _, f := range l.Fields {
		field := Field{
			ID:   f.Id,
			Type: fieldType(f),
		}
		if f.Properties != nil {
			field.DisplayName = f.Properties.DisplayName
			field.Required = f.Properties.Required
		}
		label.Fields = append(label.Fields, field)
	}

	return label
}

// fieldType derives the declared value type from which options block the
// field definition carries.
func fieldType(f *drivelabels.GoogleAppsDriveLabelsV2Field) drive.FieldType {
	switch {
	case f.DateOptions != nil:
		return drive.FieldTypeDate
	case f.IntegerOptions != nil:
		return drive.FieldTypeInteger
	case f.UserOptions != nil:
		return drive.FieldTypeUser
	case f.SelectionOptions != nil:
		return drive.FieldTypeSelection
	default:
		return drive.FieldTypeText
	}
}
