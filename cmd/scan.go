package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/labelguard/internal/config"
	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/gmail"
	"github.com/teemow/labelguard/internal/instrumentation"
	"github.com/teemow/labelguard/internal/labelfield"
	"github.com/teemow/labelguard/internal/logging"
	"github.com/teemow/labelguard/internal/pipeline"
	"github.com/teemow/labelguard/internal/sheets"
)

func newScanCmd() *cobra.Command {
	var (
		account         string
		labelID         string
		folderID        string
		expirationField string
		signatoryField  string
		days            int
		spreadsheetID   string
		sheetName       string
		ccAddress       string
		notify          bool
		yes             bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan labeled documents and handle the expiring ones",
		Long: `Walk Google Drive for documents carrying the tracking label, collect the
ones whose expiration date falls within the look-ahead window, write them
to the report spreadsheet and, when --notify is given and you confirm,
email each document's signatory.

Flags override the corresponding LABELGUARD_* environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over the environment
			if cmd.Flags().Changed("label") {
				cfg.LabelID = labelID
			}
			if cmd.Flags().Changed("folder") {
				cfg.FolderID = folderID
			}
			if cmd.Flags().Changed("expiration-field") {
				cfg.ExpirationFieldID = expirationField
			}
			if cmd.Flags().Changed("signatory-field") {
				cfg.SignatoryFieldID = signatoryField
			}
			if cmd.Flags().Changed("days") {
				cfg.DaysThreshold = days
			}
			if cmd.Flags().Changed("spreadsheet") {
				cfg.SpreadsheetID = spreadsheetID
			}
			if cmd.Flags().Changed("sheet") {
				cfg.SheetName = sheetName
			}
			if cmd.Flags().Changed("cc") {
				cfg.CCAddress = ccAddress
			}

			if err := cfg.ValidateForScan(); err != nil {
				return err
			}

			return runScan(cmd.Context(), cfg, account, notify, yes)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&labelID, "label", "", "Drive label ID to scan for")
	cmd.Flags().StringVar(&folderID, "folder", "", "Folder ID or URL to restrict the scan to, searched recursively")
	cmd.Flags().StringVar(&expirationField, "expiration-field", "", "Label field holding the expiration date")
	cmd.Flags().StringVar(&signatoryField, "signatory-field", "", "Label field naming the signatory")
	cmd.Flags().IntVar(&days, "days", config.DefaultDaysThreshold, "Look-ahead window in days")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet", "", "Spreadsheet to write the report to (omit to print the report instead)")
	cmd.Flags().StringVar(&sheetName, "sheet", config.DefaultSheetName, "Sheet tab for the report")
	cmd.Flags().StringVar(&ccAddress, "cc", "", "Address carbon-copied on every notice")
	cmd.Flags().BoolVar(&notify, "notify", false, "Email the signatories after reporting")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt before sending notices")

	return cmd
}

func runScan(ctx context.Context, cfg *config.Config, account string, notify, yes bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.DefaultLogger()

	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	provider, err := instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	driveClient, err := drive.NewClientForAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
	}

	scanner := &pipeline.DriveScanner{
		Drive:             driveClient,
		LabelID:           cfg.LabelID,
		FolderID:          drive.ExtractFileID(cfg.FolderID),
		ExpirationFieldID: cfg.ExpirationFieldID,
		SignatoryFieldID:  cfg.SignatoryFieldID,
	}

	var reporter pipeline.Reporter
	if cfg.SpreadsheetID != "" {
		sheetsClient, err := sheets.NewClientForAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("failed to create Sheets client for account %s: %w", account, err)
		}
		reporter = &pipeline.SheetsReporter{
			Sheets:        sheetsClient,
			SpreadsheetID: cfg.SpreadsheetID,
			SheetName:     cfg.SheetName,
		}
	} else {
		reporter = &consoleReporter{}
	}

	var notifier pipeline.Notifier = &noopNotifier{}
	confirm := func([]labelfield.Document) bool { return false }

	if notify {
		gmailClient, err := gmail.NewClientForAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
		}
		notifier = &pipeline.GmailNotifier{
			Gmail:   gmailClient,
			CC:      cfg.CC(),
			Today:   time.Now(),
			Logger:  logger,
			Metrics: provider.Metrics(),
		}
		confirm = func(docs []labelfield.Document) bool {
			if yes {
				return true
			}
			return promptConfirm(len(docs))
		}
	}

	runner := pipeline.NewRunner(scanner, reporter, notifier, pipeline.Config{
		Days:    cfg.DaysThreshold,
		Budget:  cfg.RunBudget,
		Confirm: confirm,
		Logger:  logger,
		Metrics: provider.Metrics(),
	})

	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if result.NothingToDo {
		fmt.Printf("Scanned %d documents, none expiring within %d days\n", result.ScannedCount, cfg.DaysThreshold)
		return nil
	}

	fmt.Printf("Scanned %d documents, %d expiring within %d days", result.ScannedCount, result.ExpiringCount, cfg.DaysThreshold)
	if notify {
		fmt.Printf(", notified %d", result.SentCount)
	}
	fmt.Println()
	return nil
}

// promptConfirm asks on the terminal before any email goes out.
func promptConfirm(count int) bool {
	fmt.Printf("Send %d expiration notices? [y/N]: ", count)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// consoleReporter prints the report when no spreadsheet is configured.
type consoleReporter struct{}

func (r *consoleReporter) WriteReport(ctx context.Context, docs []labelfield.Document) error {
	fmt.Printf("%-40s %-12s %-30s %s\n", "Name", "Expires", "Signatory", "URL")
	for _, doc := range docs {
		fmt.Printf("%-40s %-12s %-30s %s\n", doc.Name, doc.ExpirationDate, doc.SignatoryEmail, doc.URL)
	}
	return nil
}

// noopNotifier stands in when --notify is not given.
type noopNotifier struct{}

func (n *noopNotifier) Notify(ctx context.Context, docs []labelfield.Document) int {
	return 0
}
