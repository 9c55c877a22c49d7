package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/labelguard/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize a Google account from the terminal",
		Long: `Print the Google OAuth URL, wait for the authorization code and store the
resulting token. Tokens are kept per account under the user cache
directory and refreshed automatically afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Printf("Account %q is already authorized\n", account)
				return nil
			}

			fmt.Printf("Visit this URL to authorize account %q:\n\n  %s\n\n", account, google.GetAuthURLForAccount(account))
			fmt.Print("Paste the authorization code: ")

			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			authCode := strings.TrimSpace(line)
			if authCode == "" {
				return fmt.Errorf("authorization code is required")
			}

			if err := google.SaveTokenForAccount(cmd.Context(), account, authCode); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Printf("Token saved for account %q\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	return cmd
}
