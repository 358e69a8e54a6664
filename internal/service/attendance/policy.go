package attendance

import (
	"time"

	"github.com/asistencia-cl/asistencia-backend-go/internal/domain/attendance"
)

// Decide classifies the next event for a person given only their most
// recent ledger entry. No history before the last event is consulted, and
// no historical repair is attempted when past kinds do not alternate.
func Decide(last *attendance.Event, now time.Time, minInterval time.Duration) (attendance.Kind, error) {
	if last == nil {
		// First event for a person is always a check-in.
		return attendance.KindCheckIn, nil
	}

	next := last.Kind.Opposite()
	if next == last.Kind {
		// Cannot happen through Opposite; guards against a bypassed
		// alternation rule upstream.
		return "", attendance.ErrDuplicateKind
	}

	if now.Sub(last.RecordedAt) < minInterval {
		return "", attendance.ErrTooSoon
	}

	return next, nil
}
