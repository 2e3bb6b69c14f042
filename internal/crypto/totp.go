package crypto

import (
	"github.com/pquerna/otp/totp"
)

// GenerateTOTPSecret creates a fresh base32 provisioning secret and the
// otpauth:// URI an authenticator app consumes. The secret is handed to
// the caller exactly once at registration.
func GenerateTOTPSecret(issuer, account string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// ValidateTOTP checks a six-digit code against the secret at the
// current time step (30s step, one step of skew either way, matching
// what authenticator apps expect).
func ValidateTOTP(code, secret string) bool {
	return totp.Validate(code, secret)
}
