package worker

import (
	"context"
	"fmt"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepository worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepository,
	}
}

// Upsert implements worker.WorkerService.
func (s *WorkerServiceImpl) Upsert(ctx context.Context, req worker.UpsertRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.Upsert(ctx, validator.NormalizeRUT(req.RUT), req.Name)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to upsert worker: %w", err)
	}

	return worker.WorkerResponse{RUT: w.RUT, Name: w.Name}, nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, rut string) error {
	if err := s.WorkerRepository.Delete(ctx, validator.NormalizeRUT(rut)); err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	workers, err := s.WorkerRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.WorkerResponse{RUT: w.RUT, Name: w.Name})
	}

	return responses, nil
}
