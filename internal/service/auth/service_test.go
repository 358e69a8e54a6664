package auth

import (
	"context"
	"os"
	"testing"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/admin"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/auth"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/jwt"
	"github.com/asistencia-cl/asistencia-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testAuthDB *database.DB

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func authTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	if testAuthDB != nil {
		return
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	_, err = testAuthDB.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS admins (
			username      TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	require.NoError(t, err)
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	_, err := testAuthDB.Exec(ctx, "TRUNCATE TABLE admins CASCADE")
	require.NoError(t, err)
}

func seedAdmin(t *testing.T, ctx context.Context, username, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	_, err = postgresql.NewAdminRepository(testAuthDB).Create(ctx, admin.Admin{
		Username:     username,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
}

func newTestAuthService() auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(testAuthDB, postgresql.NewAdminRepository(testAuthDB), jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	seedAdmin(t, ctx, "admin", "password123")
	svc := newTestAuthService()

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	seedAdmin(t, ctx, "admin", "password123")
	svc := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrongpassword"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "nobody", Password: "password123"})

	// Unknown usernames and wrong passwords are indistinguishable to the
	// caller.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	seedAdmin(t, ctx, "admin", "password123")
	svc := newTestAuthService()

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// An access token is not accepted as a refresh token.
	_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()

	_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	seedAdmin(t, ctx, "admin", "password123")
	svc := newTestAuthService()

	err := svc.ChangePassword(ctx, "admin", auth.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword456",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "newpassword456"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	seedAdmin(t, ctx, "admin", "password123")
	svc := newTestAuthService()

	err := svc.ChangePassword(ctx, "admin", auth.ChangePasswordRequest{
		CurrentPassword: "wrongpassword",
		NewPassword:     "newpassword456",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
