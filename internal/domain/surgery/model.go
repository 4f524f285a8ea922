package surgery

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a surgery does not exist.
var ErrNotFound = errors.New("surgery not found")

// Lifecycle states of a surgery, stored verbatim in cirugias.estado.
const (
	StateScheduled = "Programada"
	StatePreOp     = "Pre-operatorio"
	StateInProcess = "En_proceso"
	StatePostOp    = "Post-operatorio"
	StateFinished  = "Finalizada"
	StateCancelled = "Cancelada"
)

var validStates = map[string]bool{
	StateScheduled: true,
	StatePreOp:     true,
	StateInProcess: true,
	StatePostOp:    true,
	StateFinished:  true,
	StateCancelled: true,
}

// ValidState reports whether s is a known lifecycle state.
func ValidState(s string) bool { return validStates[s] }

// Surgery maps to the cirugias table, with the type and surgeon names
// joined in for display.
type Surgery struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"paciente_id" json:"paciente_id"`
	TypeID      int64      `db:"tipo_cirugia_id" json:"tipo_cirugia_id"`
	TypeName    string     `db:"tipo_cirugia_nombre" json:"tipo_cirugia_nombre"`
	SurgeonID   int64      `db:"medico_principal_id" json:"medico_principal_id"`
	SurgeonName string     `db:"medico_nombre" json:"medico_nombre"`
	State       string     `db:"estado" json:"estado"`
	ScheduledAt time.Time  `db:"fecha_programada" json:"fecha_programada"`
	StartedAt   *time.Time `db:"fecha_inicio" json:"fecha_inicio,omitempty"`
	EndedAt     *time.Time `db:"fecha_fin" json:"fecha_fin,omitempty"`
	Room        *string    `db:"sala" json:"sala,omitempty"`
	PreOpNotes  *string    `db:"notas_preoperatorias" json:"notas_preoperatorias,omitempty"`
}
