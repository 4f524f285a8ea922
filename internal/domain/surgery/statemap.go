package surgery

import (
	"fmt"
	"time"
)

// Family-facing phase names derived from the lifecycle state.
const (
	PhasePreparing    = "preparacion"
	PhaseInProgress   = "en_progreso"
	PhaseFinished     = "finalizada"
	PhaseComplication = "complicacion"
)

// MapState translates a lifecycle state into the family-facing phase and
// progress percentage. Unknown states (and the no-surgery case, by
// convention an empty string) map to preparacion/0.
func MapState(state string) (phase string, progress int) {
	switch state {
	case StateScheduled:
		return PhasePreparing, 0
	case StatePreOp:
		return PhasePreparing, 25
	case StateInProcess:
		return PhaseInProgress, 75
	case StatePostOp:
		return PhaseInProgress, 90
	case StateFinished:
		return PhaseFinished, 100
	case StateCancelled:
		return PhaseComplication, 0
	default:
		return PhasePreparing, 0
	}
}

// ElapsedMinutes returns whole minutes from start to end, or to now when
// the surgery is still running. Zero when the surgery never started.
func ElapsedMinutes(startedAt, endedAt *time.Time, now time.Time) int {
	if startedAt == nil {
		return 0
	}
	until := now
	if endedAt != nil {
		until = *endedAt
	}
	m := int(until.Sub(*startedAt).Minutes())
	if m < 0 {
		return 0
	}
	return m
}

// FormatElapsed renders minutes as zero-padded HH:MM, e.g. 125 → "02:05".
func FormatElapsed(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
