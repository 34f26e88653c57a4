package nextcloud

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nvinuesa/bwotp/internal/security"
)

// Exporter errors.
var (
	ErrNoOutputPath = errors.New("output path is required")
)

const jsonIndent = "    "

// ExportOptions configures import file export behavior.
type ExportOptions struct {
	// OutputPath is the destination file path. An existing file is overwritten.
	OutputPath string
}

// Export writes the accounts to disk as a Nextcloud OTP Manager import file.
func Export(accounts []Account, opts ExportOptions) error {
	if opts.OutputPath == "" {
		return ErrNoOutputPath
	}

	data, err := ExportToBytes(accounts)
	if err != nil {
		return err
	}
	defer security.Wipe(&data)

	// Ensure parent directory exists
	dir := filepath.Dir(opts.OutputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %q: %w", opts.OutputPath, err)
	}

	return nil
}

// ExportToBytes returns the indented import file (for testing or piping).
func ExportToBytes(accounts []Account) ([]byte, error) {
	if accounts == nil {
		accounts = []Account{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(ImportFile{Accounts: accounts}); err != nil {
		return nil, fmt.Errorf("failed to encode accounts: %w", err)
	}

	return buf.Bytes(), nil
}
