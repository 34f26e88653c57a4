// Package main provides the entry point for the bwotp CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvinuesa/bwotp/internal/convert"
)

func newRootCmd() *cobra.Command {
	opts := convert.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "bwotp",
		Short: "Convert Bitwarden TOTP secrets to Nextcloud OTP Manager accounts",
		Long: `bwotp reads an unencrypted Bitwarden JSON export and writes every login
that carries a TOTP secret as a Nextcloud OTP Manager import file.

The TOTP field may hold either an otpauth:// URI or a bare secret. Accounts
are written with SHA1, 6 digits, and a 30 second period.

Examples:
  # Convert bitwarden.json in the current directory to accounts.json
  bwotp

  # Choose input and output paths
  bwotp -i ~/Downloads/bitwarden_export.json -o otp-accounts.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts)
		},
	}

	// Disable completion command
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().StringVarP(&opts.InputPath, "input", "i", convert.DefaultInputPath, "Bitwarden export file path")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", convert.DefaultOutputPath, "Nextcloud OTP Manager import file path")

	return cmd
}

func runConvert(cmd *cobra.Command, opts convert.Options) error {
	result, err := convert.Run(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote %d TOTP accounts to %s\n", result.Count, result.OutputPath)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
