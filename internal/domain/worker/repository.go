package worker

import "context"

// WorkerRepository defines data access for the roster.
type WorkerRepository interface {
	// GetByRUT returns the worker for a RUT, or ErrWorkerNotFound.
	GetByRUT(ctx context.Context, rut string) (Worker, error)

	// Upsert creates or replaces the roster entry for a RUT.
	Upsert(ctx context.Context, rut string, name string) (Worker, error)

	// Delete removes a roster entry. Deleting an absent RUT is a no-op.
	Delete(ctx context.Context, rut string) error

	// List returns the roster ordered by name.
	List(ctx context.Context) ([]Worker, error)
}
