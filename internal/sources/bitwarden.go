// Package sources reads TOTP secrets out of password-manager exports.
package sources

import (
	"encoding/json"
	"os"

	"github.com/nvinuesa/bwotp/internal/model"
	"github.com/nvinuesa/bwotp/internal/security"
)

const bitwardenSourceName = "bitwarden"

// BitwardenExport represents the top-level Bitwarden JSON export structure.
type BitwardenExport struct {
	Encrypted bool            `json:"encrypted"`
	Items     []BitwardenItem `json:"items"`
}

// BitwardenItem represents a single item in the Bitwarden export.
// Name is a pointer so that a missing name can be told apart from an empty one.
type BitwardenItem struct {
	ID    string          `json:"id"`
	Type  int             `json:"type"`
	Name  *string         `json:"name"`
	Login *BitwardenLogin `json:"login,omitempty"`
}

// BitwardenLogin represents login data in a Bitwarden item.
type BitwardenLogin struct {
	Username string `json:"username"`
	TOTP     string `json:"totp"`
}

// HasTOTP reports whether the item is a login carrying a TOTP field.
func (i *BitwardenItem) HasTOTP() bool {
	return i.Login != nil && i.Login.TOTP != ""
}

// LoadBitwarden reads and decodes an unencrypted Bitwarden JSON export.
func LoadBitwarden(path string) (*BitwardenExport, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrFileNotFound{Path: path}
		}
		return nil, &ErrPermissionDenied{Path: path, Op: "stat", Err: err}
	}

	if info.IsDir() {
		return nil, &ErrInvalidFormat{
			Source:  bitwardenSourceName,
			Path:    path,
			Details: "path must be a file, not a directory",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrPermissionDenied{Path: path, Op: "read", Err: err}
	}
	defer security.Wipe(&data)

	var export BitwardenExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, &ErrInvalidFormat{
			Source:  bitwardenSourceName,
			Path:    path,
			Details: "invalid JSON",
			Err:     err,
		}
	}

	// Reject encrypted exports
	if export.Encrypted {
		return nil, &ErrInvalidFormat{
			Source:  bitwardenSourceName,
			Path:    path,
			Details: "encrypted Bitwarden exports are not supported; please export without encryption",
		}
	}

	if export.Items == nil {
		return nil, &ErrInvalidFormat{
			Source:  bitwardenSourceName,
			Path:    path,
			Details: "missing items array",
		}
	}

	return &export, nil
}

// ExtractTOTP returns one entry per login item that carries a TOTP field,
// in export order.
func ExtractTOTP(export *BitwardenExport) ([]model.TOTPEntry, error) {
	entries := make([]model.TOTPEntry, 0, len(export.Items))

	for i := range export.Items {
		item := &export.Items[i]
		if !item.HasTOTP() {
			continue
		}

		if item.Name == nil {
			return nil, &ErrMissingName{Source: bitwardenSourceName, Index: i}
		}

		entries = append(entries, model.TOTPEntry{
			Issuer: item.Login.Username,
			Name:   *item.Name,
			Secret: ParseTOTPSecret(item.Login.TOTP),
		})
	}

	return entries, nil
}
