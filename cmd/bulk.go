package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/labelguard/internal/bulk"
	"github.com/teemow/labelguard/internal/drive"
	"github.com/teemow/labelguard/internal/labels"
	"github.com/teemow/labelguard/internal/logging"
)

func newBulkApplyCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "bulk-apply <csv-file>",
		Short: "Apply label field values to many files from a CSV",
		Long: `Read a CSV with columns fileId,labelId,fieldId,value (header row required)
and set each field value on the corresponding file. The field's value type
is resolved from the label schema, so dates, integers, users and selections
are applied with the right modification.

Rows fail independently: a failing row is reported and the batch continues.
File IDs may be given as bare IDs or as Drive/Docs/Sheets/Slides URLs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulkApply(cmd.Context(), args[0], account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	return cmd
}

func runBulkApply(ctx context.Context, path, account string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	assignments, err := bulk.ParseAssignments(f)
	if err != nil {
		return err
	}
	if len(assignments) == 0 {
		fmt.Println("No assignments found in CSV")
		return nil
	}

	driveClient, err := drive.NewClientForAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
	}
	labelsClient, err := labels.NewClientForAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create Drive Labels client for account %s: %w", account, err)
	}

	applier := bulk.NewLabelApplier(driveClient, labelsClient)
	summary := bulk.ApplyAll(ctx, applier, assignments, logging.DefaultLogger())

	fmt.Printf("Applied %d of %d assignments (%d failed)\n", summary.Succeeded, summary.Total, summary.Failed)
	for _, rowErr := range summary.Errors {
		fmt.Printf("  row %d (%s): %s\n", rowErr.Row, rowErr.FileID, rowErr.Error)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d assignments failed", summary.Failed, summary.Total)
	}
	return nil
}
