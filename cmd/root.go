package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the labelguard application
var rootCmd = &cobra.Command{
	Use:   "labelguard",
	Short: "Tracks expiration dates on labeled Google Drive documents",
	Long: `labelguard scans Google Drive for documents carrying a tracking label,
collects the ones whose expiration date is coming up, writes them to a
report spreadsheet and, after confirmation, emails each document's
signatory.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "labelguard version %s\n" .Version}}`)

	// If no subcommand is provided, run the scan command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "scan")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newBulkApplyCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
