package model

// TOTPEntry is a TOTP secret extracted from a password-manager login.
// It is the intermediate representation between the source export and the
// Nextcloud OTP Manager account record.
type TOTPEntry struct {
	// Issuer is the login username, or empty when the login has none.
	Issuer string

	// Name is the display name of the source item.
	Name string

	// Secret is the shared TOTP secret, taken from the otpauth URI when the
	// field holds one and used verbatim otherwise.
	Secret string
}
