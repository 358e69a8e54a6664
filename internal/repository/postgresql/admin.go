package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/admin"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepository{db: db}
}

// GetByUsername implements admin.AdminRepository.
func (r *adminRepository) GetByUsername(ctx context.Context, username string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT username, password_hash, created_at, updated_at
		FROM admins
		WHERE username = $1
	`

	var a admin.Admin
	err := q.QueryRow(ctx, query, username).Scan(&a.Username, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrAdminNotFound
		}
		return admin.Admin{}, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return a, nil
}

// Create implements admin.AdminRepository.
func (r *adminRepository) Create(ctx context.Context, a admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.Username, a.PasswordHash).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return admin.Admin{}, fmt.Errorf("failed to create admin: %w", err)
	}

	return a, nil
}

// UpdatePassword implements admin.AdminRepository.
func (r *adminRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE admins
		SET password_hash = $2, updated_at = NOW()
		WHERE username = $1
	`

	tag, err := q.Exec(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

// Count implements admin.AdminRepository.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}
