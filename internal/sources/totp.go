package sources

import (
	"strings"
	"unicode"

	"github.com/pquerna/otp"
)

// ParseTOTPSecret returns the shared secret held by a TOTP field.
//
// Whitespace is stripped first. If what remains is a URI whose query has a
// non-empty secret parameter (the otpauth://totp/... form), the first secret
// value is returned. Anything else is taken to be the raw secret itself.
func ParseTOTPSecret(raw string) string {
	cleaned := stripWhitespace(raw)

	if secret, ok := secretFromURI(cleaned); ok {
		return secret
	}

	return cleaned
}

// secretFromURI extracts the secret query parameter from an otpauth URI.
func secretFromURI(s string) (string, bool) {
	key, err := otp.NewKeyFromURL(s)
	if err != nil {
		return "", false
	}

	secret := key.Secret()
	if secret == "" {
		return "", false
	}

	return secret, true
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
