package worker

import "context"

// WorkerService is the roster management contract.
type WorkerService interface {
	Upsert(ctx context.Context, req UpsertRequest) (WorkerResponse, error)
	Delete(ctx context.Context, rut string) error
	List(ctx context.Context) ([]WorkerResponse, error)
}
