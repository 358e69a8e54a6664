package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/asistencia-cl/asistencia-backend-go/internal/config"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-cl/asistencia-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testBootstrapDB *database.DB

func bootstrapTestInit(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	if testBootstrapDB != nil {
		return
	}

	var err error
	testBootstrapDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runBootstrap(t *testing.T, ctx context.Context, cfg config.BootstrapConfig) {
	err := Run(
		ctx,
		discardLogger(),
		testBootstrapDB,
		postgresql.NewAdminRepository(testBootstrapDB),
		postgresql.NewWorkerRepository(testBootstrapDB),
		cfg,
	)
	require.NoError(t, err)
}

func TestRun_SeedsDefaultAdminOnce(t *testing.T) {
	ctx := context.Background()
	bootstrapTestInit(t)

	cfg := config.BootstrapConfig{
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "firstpassword",
	}
	runBootstrap(t, ctx, cfg)

	_, err := testBootstrapDB.Exec(ctx, "TRUNCATE TABLE admins CASCADE")
	require.NoError(t, err)

	runBootstrap(t, ctx, cfg)

	adminRepo := postgresql.NewAdminRepository(testBootstrapDB)
	count, err := adminRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	seeded, err := adminRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("firstpassword")))

	// A second run must not reset an existing credential.
	cfg.DefaultAdminPassword = "secondpassword"
	runBootstrap(t, ctx, cfg)

	seeded, err = adminRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("firstpassword")))
}

func TestRun_RosterImport(t *testing.T) {
	ctx := context.Background()
	bootstrapTestInit(t)

	cfg := config.BootstrapConfig{
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "testpassword",
	}
	runBootstrap(t, ctx, cfg)

	_, err := testBootstrapDB.Exec(ctx, "TRUNCATE TABLE workers CASCADE")
	require.NoError(t, err)

	rosterPath := filepath.Join(t.TempDir(), "roster.csv")
	roster := "rut,nombre\n" +
		"11.111.111-1,Maria Gonzalez\n" +
		"12345678-5,Pedro Soto\n" +
		"11111111-2,Bad Verifier\n"
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o644))

	cfg.RosterImportFile = rosterPath
	runBootstrap(t, ctx, cfg)

	workerRepo := postgresql.NewWorkerRepository(testBootstrapDB)
	workers, err := workerRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 2)

	// RUTs are stored in canonical form, without dots.
	w, err := workerRepo.GetByRUT(ctx, "11111111-1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Gonzalez", w.Name)

	// Re-importing is an upsert, not a duplicate insert.
	runBootstrap(t, ctx, cfg)
	workers, err = workerRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, workers, 2)
}
