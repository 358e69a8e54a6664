package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/worker"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/geocode"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/validator"
	"github.com/asistencia-cl/asistencia-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.LedgerRepository
	worker.WorkerRepository
	geocoder    geocode.Geocoder
	minInterval time.Duration
}

func NewAttendanceService(
	db *database.DB,
	ledgerRepository attendance.LedgerRepository,
	workerRepository worker.WorkerRepository,
	geocoder geocode.Geocoder,
	minInterval time.Duration,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:               db,
		LedgerRepository: ledgerRepository,
		WorkerRepository: workerRepository,
		geocoder:         geocoder,
		minInterval:      minInterval,
	}
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	rut := validator.NormalizeRUT(req.RUT)

	w, err := s.WorkerRepository.GetByRUT(ctx, rut)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	nowUTC := time.Now().UTC()

	// Resolve coordinates before opening the transaction: a failed geocode
	// must never leave partial ledger state behind.
	var latitude, longitude float64
	var locationText *string
	if req.Latitude != nil && req.Longitude != nil {
		latitude = *req.Latitude
		longitude = *req.Longitude
		if req.Address != "" {
			locationText = &req.Address
		}
	} else {
		result, err := s.geocoder.Search(ctx, req.Address)
		if err != nil {
			return attendance.EventResponse{}, err
		}
		latitude = result.Latitude
		longitude = result.Longitude
		locationText = &req.Address
	}

	var created attendance.Event
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		last, err := s.LedgerRepository.LastForUpdate(txCtx, rut)
		if err != nil {
			return fmt.Errorf("failed to read last attendance event: %w", err)
		}

		kind, err := Decide(last, nowUTC, s.minInterval)
		if err != nil {
			return err
		}

		event := attendance.Event{
			ID:            uuid.NewString(),
			RUT:           rut,
			Name:          w.Name,
			LocationText:  locationText,
			Latitude:      &latitude,
			Longitude:     &longitude,
			RecordedAt:    nowUTC,
			TimezoneLabel: req.TimezoneLabel,
			Kind:          kind,
		}

		created, err = s.LedgerRepository.Append(txCtx, event)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		return attendance.EventResponse{}, err
	}

	return attendance.NewEventResponse(created), nil
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context, rut string) (attendance.StatusResponse, error) {
	rut = validator.NormalizeRUT(rut)
	if _, err := s.WorkerRepository.GetByRUT(ctx, rut); err != nil {
		return attendance.StatusResponse{}, err
	}

	last, err := s.LedgerRepository.Last(ctx, rut)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to read last attendance event: %w", err)
	}

	resp := attendance.StatusResponse{
		RUT:      rut,
		NextKind: string(attendance.KindCheckIn),
	}
	if last != nil {
		resp.NextKind = string(last.Kind.Opposite())
		lastResp := attendance.NewEventResponse(*last)
		resp.LastEvent = &lastResp
	}

	return resp, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.LedgerRepository.List(ctx, filter.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, attendance.NewEventResponse(ev))
	}

	return responses, nil
}

// Months implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Months(ctx context.Context) ([]string, error) {
	months, err := s.LedgerRepository.MonthsPresent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance months: %w", err)
	}
	return months, nil
}
