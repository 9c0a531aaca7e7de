package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"happybrother-backend/internal/config"
	"happybrother-backend/internal/domains/auth"
	"happybrother-backend/pkg/jwt"
	"happybrother-backend/pkg/logger"
)

const adminRole = "admin"

// authService implements auth.Service for the single-admin CMS.
// The configured password is hashed once at construction so only the
// bcrypt hash lives in memory afterwards.
type authService struct {
	adminEmail   string
	passwordHash []byte
	tokens       *jwt.Manager
	expiry       time.Duration
}

func NewAuthService(cfg config.AdminConfig, tokens *jwt.Manager, expiry time.Duration) (auth.Service, error) {
	// bcrypt cost 12 balances hashing time against brute-force cost
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &authService{
		adminEmail:   strings.ToLower(strings.TrimSpace(cfg.Email)),
		passwordHash: hash,
		tokens:       tokens,
		expiry:       expiry,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// bcrypt comparison runs regardless of the email match so both
	// failure paths take comparable time.
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if email != s.adminEmail || err != nil {
		logger.Warn("admin login rejected", auth.ErrInvalidCredentials)
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(s.adminEmail, adminRole)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrTokenGeneration, err)
	}

	logger.Info("admin login", map[string]interface{}{"email": s.adminEmail})

	return &auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.expiry),
		Email:       s.adminEmail,
		Role:        adminRole,
	}, nil
}

func (s *authService) Logout(ctx context.Context, email string) error {
	logger.Info("admin logout", map[string]interface{}{"email": email})
	return nil
}
