// Package convert runs the Bitwarden to Nextcloud OTP Manager conversion.
package convert

import (
	"fmt"

	"github.com/nvinuesa/bwotp/internal/nextcloud"
	"github.com/nvinuesa/bwotp/internal/sources"
)

// Default file paths, relative to the working directory.
const (
	DefaultInputPath  = "bitwarden.json"
	DefaultOutputPath = "accounts.json"
)

// Options configures a conversion run.
type Options struct {
	// InputPath is the Bitwarden JSON export to read.
	InputPath string
	// OutputPath is the Nextcloud OTP Manager import file to write.
	OutputPath string
}

// DefaultOptions returns Options with the default file paths.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Result summarizes a completed conversion.
type Result struct {
	Count      int
	OutputPath string
}

// Run loads the export, extracts TOTP entries, and writes the import file.
// The output file is left untouched when loading or extraction fails.
func Run(opts Options) (Result, error) {
	export, err := sources.LoadBitwarden(opts.InputPath)
	if err != nil {
		return Result{}, err
	}

	entries, err := sources.ExtractTOTP(export)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %q: %w", opts.InputPath, err)
	}

	accounts := nextcloud.NewAccounts(entries)

	if err := nextcloud.Export(accounts, nextcloud.ExportOptions{OutputPath: opts.OutputPath}); err != nil {
		return Result{}, err
	}

	return Result{Count: len(accounts), OutputPath: opts.OutputPath}, nil
}
