package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"happybrother-backend/internal/config"
	"happybrother-backend/internal/domains/auth"
	"happybrother-backend/pkg/jwt"
)

func newTestService(t *testing.T) (auth.Service, *jwt.Manager) {
	t.Helper()

	manager := jwt.NewManager("test-secret", time.Hour)
	svc, err := NewAuthService(config.AdminConfig{
		Email:    "admin@happybrotherac.com",
		Password: "admin123",
	}, manager, time.Hour)
	require.NoError(t, err)

	return svc, manager
}

func TestLoginSuccessIssuesVerifiableToken(t *testing.T) {
	svc, manager := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@happybrotherac.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@happybrotherac.com", resp.Email)
	assert.Equal(t, "admin", resp.Role)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := manager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@happybrotherac.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginNormalizesEmailCase(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "  Admin@HappyBrotherAC.com ",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@happybrotherac.com", resp.Email)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@happybrotherac.com",
		Password: "hunter22",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmailRejected(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "intruder@example.com",
		Password: "admin123",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginValidatesRequest(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{name: "empty email", req: auth.LoginRequest{Password: "admin123"}},
		{name: "not an email", req: auth.LoginRequest{Email: "admin", Password: "admin123"}},
		{name: "password too short", req: auth.LoginRequest{Email: "admin@happybrotherac.com", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), &tt.req)
			assert.Nil(t, resp)

			require.Error(t, err)
			_, ok := err.(validation.Errors)
			assert.True(t, ok, "expected validation.Errors, got %T", err)
		})
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.Logout(context.Background(), "admin@happybrotherac.com"))
}
