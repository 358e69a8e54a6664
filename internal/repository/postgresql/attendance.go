package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
	"github.com/asistencia-cl/asistencia-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) attendance.LedgerRepository {
	return &ledgerRepository{db: db}
}

const eventColumns = `id, rut, name, location_text, latitude, longitude, recorded_at, timezone_label, kind, created_at`

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var ev attendance.Event
	var kind string
	err := row.Scan(
		&ev.ID, &ev.RUT, &ev.Name, &ev.LocationText,
		&ev.Latitude, &ev.Longitude, &ev.RecordedAt,
		&ev.TimezoneLabel, &kind, &ev.CreatedAt,
	)
	ev.Kind = attendance.Kind(kind)
	return ev, err
}

// Append implements attendance.LedgerRepository.
func (r *ledgerRepository) Append(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	if err := event.Validate(); err != nil {
		return attendance.Event{}, err
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, rut, name, location_text, latitude, longitude,
			recorded_at, timezone_label, kind
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.RUT,
		event.Name,
		event.LocationText,
		event.Latitude,
		event.Longitude,
		event.RecordedAt,
		event.TimezoneLabel,
		string(event.Kind),
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to append attendance event: %w", err)
	}

	return event, nil
}

// Last implements attendance.LedgerRepository.
func (r *ledgerRepository) Last(ctx context.Context, rut string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE rut = $1
		ORDER BY recorded_at DESC, created_at DESC
		LIMIT 1
	`

	ev, err := scanEvent(q.QueryRow(ctx, query, rut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no history for this person
		}
		return nil, fmt.Errorf("failed to get last attendance event: %w", err)
	}

	return &ev, nil
}

// LastForUpdate implements attendance.LedgerRepository. It takes a
// per-person transaction-scoped advisory lock before reading, so two
// concurrent submissions for the same RUT cannot both observe the same
// "last" event. Must run inside a transaction.
func (r *ledgerRepository) LastForUpdate(ctx context.Context, rut string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, rut); err != nil {
		return nil, fmt.Errorf("failed to lock attendance for rut: %w", err)
	}

	return r.Last(ctx, rut)
}

// List implements attendance.LedgerRepository.
func (r *ledgerRepository) List(ctx context.Context, month *string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
	`
	args := []interface{}{}

	if month != nil && *month != "" {
		// Month filtering matches the YYYY-MM prefix of the timestamp as
		// displayed, i.e. in UTC.
		query += ` WHERE to_char(recorded_at AT TIME ZONE 'UTC', 'YYYY-MM') = $1`
		args = append(args, *month)
	}

	query += ` ORDER BY recorded_at DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// MonthsPresent implements attendance.LedgerRepository.
func (r *ledgerRepository) MonthsPresent(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT to_char(recorded_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month
		FROM attendance_events
		ORDER BY month DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance months: %w", err)
	}
	defer rows.Close()

	var months []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan attendance month: %w", err)
		}
		months = append(months, m)
	}

	return months, rows.Err()
}
