package entity

// RegisterRequest is the payload for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse carries the provisioning secret back to the caller.
// The secret is returned exactly once and is not retrievable afterwards.
type RegisterResponse struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	OTPSecret  string `json:"otp_secret"`
	OtpauthURL string `json:"otpauth_url"`
}

// LoginRequest is the payload for authentication. OTPCode is required
// only for accounts that hold a provisioning secret.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	OTPCode  string `json:"otp_code"`
}

// TokenResponse is a successful login result.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
