package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"flights-service/internal/crypto"
	"flights-service/internal/domain/entity"
	"flights-service/internal/domain/repository"
	"flights-service/pkg/logger"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailDomain      = errors.New("email must end with the organizational domain")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already exists")

	// ErrInvalidCredentials is deliberately generic: it must not reveal
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeRequired       = errors.New("code required")
	ErrInvalidCode        = errors.New("invalid code")
)

// AuthService registers accounts and issues bearer tokens
type AuthService struct {
	users         repository.UserRepository
	jwtSecret     string
	tokenLifetime time.Duration
	emailDomain   string
	otpIssuer     string
	log           logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repository.UserRepository,
	jwtSecret string,
	tokenLifetime time.Duration,
	emailDomain string,
	otpIssuer string,
	log logger.Logger,
) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
		emailDomain:   emailDomain,
		otpIssuer:     otpIssuer,
		log:           log,
	}
}

// Register creates a new account. The password is hashed immediately
// and the TOTP provisioning secret is returned exactly once; it cannot
// be retrieved again afterwards.
func (s *AuthService) Register(ctx context.Context, req entity.RegisterRequest) (*entity.RegisterResponse, error) {
	if req.Username == "" {
		return nil, ErrUsernameRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if !strings.HasSuffix(strings.ToLower(req.Email), strings.ToLower(s.emailDomain)) {
		return nil, ErrEmailDomain
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	secret, otpauthURL, err := crypto.GenerateTOTPSecret(s.otpIssuer, req.Username)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		OTPSecret:    &secret,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info("account registered", "username", user.Username)

	return &entity.RegisterResponse{
		Username:   user.Username,
		Email:      user.Email,
		OTPSecret:  secret,
		OtpauthURL: otpauthURL,
	}, nil
}

// Login authenticates with password plus, for accounts holding a
// provisioning secret, a time-based one-time code, and issues a signed
// bearer token. No server-side session is created: later requests are
// authorized purely by re-verifying the token.
func (s *AuthService) Login(ctx context.Context, req entity.LoginRequest) (*entity.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if crypto.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user, req.Password)
	}

	if user.OTPSecret != nil && *user.OTPSecret != "" {
		if req.OTPCode == "" {
			return nil, ErrCodeRequired
		}
		if !crypto.ValidateTOTP(req.OTPCode, *user.OTPSecret) {
			return nil, ErrInvalidCode
		}
	}

	token, err := crypto.GenerateToken(user.Username, s.jwtSecret, s.tokenLifetime)
	if err != nil {
		return nil, err
	}

	return &entity.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// upgradeHash rehashes a legacy password at the current cost. Failure
// is logged and swallowed: the login itself already succeeded.
func (s *AuthService) upgradeHash(ctx context.Context, user *entity.User, password string) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		s.log.Warn("password hash upgrade failed", "username", user.Username, "error", err)
		return
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		s.log.Warn("password hash upgrade failed", "username", user.Username, "error", err)
		return
	}
	s.log.Info("password hash upgraded", "username", user.Username)
}
