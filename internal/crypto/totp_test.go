package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestGenerateTOTPSecret(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("FlughafenABC", "alice")
	if err != nil {
		t.Fatalf("GenerateTOTPSecret() unexpected error: %v", err)
	}
	if secret == "" {
		t.Fatal("expected a non-empty secret")
	}
	if !strings.HasPrefix(url, "otpauth://totp/") {
		t.Errorf("provisioning URL = %q, want otpauth://totp/ prefix", url)
	}
	if !strings.Contains(url, "FlughafenABC") || !strings.Contains(url, "alice") {
		t.Errorf("provisioning URL %q should carry issuer and account", url)
	}
}

func TestGenerateTOTPSecretUnique(t *testing.T) {
	first, _, err := GenerateTOTPSecret("FlughafenABC", "alice")
	if err != nil {
		t.Fatalf("GenerateTOTPSecret() unexpected error: %v", err)
	}
	second, _, err := GenerateTOTPSecret("FlughafenABC", "alice")
	if err != nil {
		t.Fatalf("GenerateTOTPSecret() unexpected error: %v", err)
	}
	if first == second {
		t.Error("two registrations must not share a secret")
	}
}

func TestValidateTOTP(t *testing.T) {
	secret, _, err := GenerateTOTPSecret("FlughafenABC", "alice")
	if err != nil {
		t.Fatalf("GenerateTOTPSecret() unexpected error: %v", err)
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("GenerateCode() unexpected error: %v", err)
	}

	if !ValidateTOTP(code, secret) {
		t.Error("ValidateTOTP() rejected the current code")
	}
	if ValidateTOTP("000000", secret) && code != "000000" {
		t.Error("ValidateTOTP() accepted a wrong code")
	}
}
