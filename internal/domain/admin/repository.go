package admin

import "context"

// AdminRepository defines data access for administrator credentials.
type AdminRepository interface {
	// GetByUsername returns the credential for a username, or
	// ErrAdminNotFound.
	GetByUsername(ctx context.Context, username string) (Admin, error)

	// Create inserts a new credential.
	Create(ctx context.Context, a Admin) (Admin, error)

	// UpdatePassword replaces the stored hash for a username.
	UpdatePassword(ctx context.Context, username string, passwordHash string) error

	// Count returns the number of stored credentials. Used by the
	// bootstrap seed check.
	Count(ctx context.Context) (int64, error)
}
