// Package model defines the internal TOTP data model shared by the reader and
// the Nextcloud OTP Manager writer.
package model

import "fmt"

// Algorithm is the OTP hash algorithm, encoded the way Nextcloud OTP Manager
// stores it.
type Algorithm int

const (
	// AlgorithmSHA1 is the SHA1 algorithm (default).
	AlgorithmSHA1 Algorithm = iota
	// AlgorithmSHA256 is the SHA256 algorithm.
	AlgorithmSHA256
	// AlgorithmSHA512 is the SHA512 algorithm.
	AlgorithmSHA512
)

// String returns the conventional algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmSHA1:
		return "SHA1"
	case AlgorithmSHA256:
		return "SHA256"
	case AlgorithmSHA512:
		return "SHA512"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// OTP defaults written for every converted entry.
const (
	DefaultDigits = 6
	DefaultPeriod = 30
	DefaultIcon   = "default"
	TypeTOTP      = "totp"
)
