package pipeline

import (
	"context"
	"time"

	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/gmail"
	"github.com/teemow/labelguard/internal/instrumentation"
	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
	"github.com/teemow/labelguard/internal/sheets"
)

// DriveScanner walks the labeled files and extracts their tracked fields.
type DriveScanner struct {
	Drive *drive.Client

	LabelID           string
	FolderID          string
	ExpirationFieldID string
	SignatoryFieldID  string
}

func (s *DriveScanner) Scan(ctx context.Context) ([]labelfield.Document, error) {
	files, err := s.Drive.SearchRecursively(ctx, s.LabelID, s.FolderID)
	if err != nil {
		return nil, err
	}

	docs := make([]labelfield.Document, 0, len(files))
	for _, f := range files {
		extracted := labelfield.Extract(f.Fields, s.ExpirationFieldID, s.SignatoryFieldID)
		docs = append(docs, labelfield.Document{
			ID:             f.ID,
			Name:           f.Name,
			URL:            f.WebViewLink,
			ExpirationDate: extracted.ExpirationDate,
			SignatoryEmail: extracted.SignatoryEmail,
		})
	}
	return docs, nil
}

// SheetsReporter writes the expiring documents to the report sheet.
type SheetsReporter struct {
	Sheets *sheets.Client

	SpreadsheetID string
	SheetName     string
}

func (r *SheetsReporter) WriteReport(ctx context.Context, docs []labelfield.Document) error {
	return r.Sheets.WriteReport(ctx, r.SpreadsheetID, r.SheetName, docs)
}

// GmailNotifier emails the signatories and records the send counters.
type GmailNotifier struct {
	Gmail *gmail.Client

	CC      []string
	Today   time.Time
	Logger  logging.Logger
	Metrics *instrumentation.Metrics
}

func (n *GmailNotifier) Notify(ctx context.Context, docs []labelfield.Document) int {
	logger := n.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	sent, failed := n.Gmail.NotifyExpiring(docs, n.CC, n.Today, logger)

	if n.Metrics != nil {
		n.Metrics.RecordNotifications(ctx, sent, failed)
	}
	return sent
}
