package auth

import "context"

// AuthService authenticates administrators and manages their credentials.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error
}
