// Package twofactor handles the client side of the one-time-code
// challenge: local code validation before a network call, and TOTP code
// generation for users whose authenticator secret is at hand.
package twofactor

import (
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// CodeDigits is the fixed challenge code length.
const CodeDigits = 6

// NormalizeCode strips whitespace from a user-entered code.
func NormalizeCode(code string) string {
	return strings.TrimSpace(strings.ReplaceAll(code, " ", ""))
}

// ValidCode reports whether code normalizes to exactly six ASCII digits.
func ValidCode(code string) bool {
	code = NormalizeCode(code)
	if len(code) != CodeDigits {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GenerateCode computes the current TOTP code for a base32 secret.
func GenerateCode(secret string, at time.Time) (string, error) {
	return totp.GenerateCode(strings.ToUpper(NormalizeCode(secret)), at)
}

// VerifyLocal checks a code against a base32 secret locally. Used in
// tests and tooling; the backend remains the authority during login.
func VerifyLocal(code, secret string, at time.Time) bool {
	ok, err := totp.ValidateCustom(NormalizeCode(code), strings.ToUpper(NormalizeCode(secret)), at, totp.ValidateOpts{
		Period: 30,
		Skew:   1,
		Digits: otp.DigitsSix,
	})
	return err == nil && ok
}
