package bootstrap

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/asistencia-cl/asistencia-backend-go/internal/config"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/admin"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// schema is applied on every startup. Every statement is idempotent, so
// running the bootstrap against an already initialized database is a no-op.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS workers (
		rut        TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		username      TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_events (
		id             UUID PRIMARY KEY,
		rut            TEXT NOT NULL,
		name           TEXT NOT NULL,
		location_text  TEXT,
		latitude       DOUBLE PRECISION,
		longitude      DOUBLE PRECISION,
		recorded_at    TIMESTAMPTZ NOT NULL,
		timezone_label TEXT,
		kind           TEXT NOT NULL CHECK (kind IN ('check_in', 'check_out')),
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_events_rut_recorded_at
		ON attendance_events (rut, recorded_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_events_recorded_at
		ON attendance_events (recorded_at DESC)`,
}

// Run initializes the database for serving: it applies the schema, seeds
// the default administrator when no credential exists yet, and imports the
// roster file when one is configured. Safe to run on every startup.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	db *database.DB,
	adminRepo admin.AdminRepository,
	workerRepo worker.WorkerRepository,
	cfg config.BootstrapConfig,
) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := seedDefaultAdmin(ctx, logger, adminRepo, cfg); err != nil {
		return err
	}

	if cfg.RosterImportFile != "" {
		if err := importRoster(ctx, logger, workerRepo, cfg.RosterImportFile); err != nil {
			return err
		}
	}

	return nil
}

func seedDefaultAdmin(ctx context.Context, logger *slog.Logger, adminRepo admin.AdminRepository, cfg config.BootstrapConfig) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	if _, err := adminRepo.Create(ctx, admin.Admin{
		Username:     cfg.DefaultAdminUsername,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	logger.Warn("seeded default admin credential, rotate the password before exposing the service",
		slog.String("username", cfg.DefaultAdminUsername))

	return nil
}

// importRoster upserts workers from a CSV file with a rut,nombre header.
// Rows with an invalid RUT are skipped and logged rather than aborting the
// whole import.
func importRoster(ctx context.Context, logger *slog.Logger, workerRepo worker.WorkerRepository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("failed to read roster header: %w", err)
	}

	var imported, skipped int
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read roster row: %w", err)
		}

		rut := validator.NormalizeRUT(record[0])
		name := strings.TrimSpace(record[1])
		if !validator.IsValidRUT(rut) || name == "" {
			logger.Warn("skipping invalid roster row",
				slog.String("rut", record[0]))
			skipped++
			continue
		}

		if _, err := workerRepo.Upsert(ctx, rut, name); err != nil {
			return fmt.Errorf("failed to import roster row: %w", err)
		}
		imported++
	}

	logger.Info("roster import finished",
		slog.String("file", path),
		slog.Int("imported", imported),
		slog.Int("skipped", skipped))

	return nil
}
