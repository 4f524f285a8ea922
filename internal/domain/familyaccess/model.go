package familyaccess

import "time"

// AccessCode maps to the codigos_familiares table. A pair of codes resolves
// to exactly one (patient, contact) binding while the code is active, the
// patient is active, and the optional expiration has not passed.
type AccessCode struct {
	ID          int64      `db:"id" json:"id"`
	PatientID   int64      `db:"paciente_id" json:"paciente_id"`
	ContactID   int64      `db:"contacto_id" json:"contacto_id"`
	PatientCode string     `db:"codigo_paciente" json:"codigo_paciente"`
	FamilyCode  string     `db:"codigo_familiar" json:"codigo_familiar"`
	Active      bool       `db:"activo" json:"activo"`
	ExpiresAt   *time.Time `db:"fecha_expiracion" json:"fecha_expiracion,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
