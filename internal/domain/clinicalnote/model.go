package clinicalnote

import "time"

// StateCritical is the general-state value that flags a patient for the
// dashboard's critical count.
const StateCritical = "Crítico"

// Note maps to the evoluciones_clinicas table, with the physician name
// joined in for display.
type Note struct {
	ID            int64     `db:"id" json:"id"`
	PatientID     int64     `db:"paciente_id" json:"paciente_id"`
	RecordedAt    time.Time `db:"fecha_registro" json:"fecha_registro"`
	GeneralState  string    `db:"estado_general" json:"estado_general"`
	Description   string    `db:"descripcion" json:"descripcion"`
	TreatmentPlan *string   `db:"plan_tratamiento" json:"plan_tratamiento,omitempty"`
	Observations  *string   `db:"observaciones_familiares" json:"observaciones_familiares,omitempty"`
	PhysicianID   int64     `db:"medico_id" json:"medico_id"`
	PhysicianName string    `db:"medico_nombre" json:"medico_nombre"`
}
