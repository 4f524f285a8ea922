package patient

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a patient does not exist or is inactive.
var ErrNotFound = errors.New("patient not found")

// Patient maps to the pacientes table.
type Patient struct {
	ID         int64     `db:"id" json:"id"`
	FirstName  string    `db:"nombre" json:"nombre"`
	LastName   string    `db:"apellido" json:"apellido"`
	DocumentID string    `db:"cedula" json:"cedula"`
	BirthDate  time.Time `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Sex        string    `db:"sexo" json:"sexo"`
	Phone      *string   `db:"telefono" json:"telefono,omitempty"`
	Insurer    *string   `db:"eps" json:"eps,omitempty"`
	BloodType  *string   `db:"tipo_sangre" json:"tipo_sangre,omitempty"`
	Active     bool      `db:"activo" json:"activo"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Detail is a patient with surgery history aggregates, for the staff
// detail view.
type Detail struct {
	Patient
	TotalSurgeries int        `json:"total_cirugias"`
	LastSurgeryAt  *time.Time `json:"ultima_cirugia,omitempty"`
}
