// Package nextcloud builds Nextcloud OTP Manager import files.
package nextcloud

import (
	"github.com/nvinuesa/bwotp/internal/model"
)

// Account is a single Nextcloud OTP Manager account record.
// Field order matches the import format.
type Account struct {
	Algorithm model.Algorithm `json:"algorithm"`
	Counter   *int            `json:"counter"`
	Digits    int             `json:"digits"`
	Icon      string          `json:"icon"`
	Issuer    string          `json:"issuer"`
	Name      string          `json:"name"`
	Period    int             `json:"period"`
	Secret    string          `json:"secret"`
	Type      string          `json:"type"`
}

// ImportFile is the top-level document accepted by Nextcloud OTP Manager.
type ImportFile struct {
	Accounts []Account `json:"accounts"`
}

// NewAccount maps a TOTP entry to an account record with the fixed
// TOTP defaults. Counter is only meaningful for HOTP and stays nil.
func NewAccount(entry model.TOTPEntry) Account {
	return Account{
		Algorithm: model.AlgorithmSHA1,
		Counter:   nil,
		Digits:    model.DefaultDigits,
		Icon:      model.DefaultIcon,
		Issuer:    entry.Issuer,
		Name:      entry.Name,
		Period:    model.DefaultPeriod,
		Secret:    entry.Secret,
		Type:      model.TypeTOTP,
	}
}

// NewAccounts maps entries in order. The result is never nil.
func NewAccounts(entries []model.TOTPEntry) []Account {
	accounts := make([]Account, 0, len(entries))
	for _, entry := range entries {
		accounts = append(accounts, NewAccount(entry))
	}
	return accounts
}
