package auth

import "context"

// Service is the admin session gate. Login verifies the configured
// credentials and issues a signed token; every admin route verifies it
// server-side via the auth middleware.
type Service interface {
	// Login checks the credentials and returns a session token.
	// Errors: validation.Errors, ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Logout ends the session client-side; the endpoint exists for
	// auditing. Tokens expire on their own.
	Logout(ctx context.Context, email string) error
}
