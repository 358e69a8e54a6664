package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepository{db: db}
}

// GetByRUT implements worker.WorkerRepository.
func (r *workerRepository) GetByRUT(ctx context.Context, rut string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rut, name, created_at, updated_at
		FROM workers
		WHERE rut = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, rut).Scan(&w.RUT, &w.Name, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by rut: %w", err)
	}

	return w, nil
}

// Upsert implements worker.WorkerRepository.
func (r *workerRepository) Upsert(ctx context.Context, rut string, name string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (rut, name)
		VALUES ($1, $2)
		ON CONFLICT (rut) DO UPDATE
			SET name = EXCLUDED.name, updated_at = NOW()
		RETURNING rut, name, created_at, updated_at
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, rut, name).Scan(&w.RUT, &w.Name, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return worker.Worker{}, fmt.Errorf("failed to upsert worker: %w", err)
	}

	return w, nil
}

// Delete implements worker.WorkerRepository. Deleting a RUT that is not in
// the roster is a no-op, not an error.
func (r *workerRepository) Delete(ctx context.Context, rut string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM workers WHERE rut = $1`, rut); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	return nil
}

// List implements worker.WorkerRepository.
func (r *workerRepository) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rut, name, created_at, updated_at
		FROM workers
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.RUT, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}
