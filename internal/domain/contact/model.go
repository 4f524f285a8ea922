package contact

import "time"

// Contact maps to the contactos table. Family members registered for a
// patient; NotificationsEnabled marks the ones the dispatcher fans out to.
type Contact struct {
	ID                   int64     `db:"id" json:"id"`
	PatientID            int64     `db:"paciente_id" json:"paciente_id"`
	FirstName            string    `db:"nombre" json:"nombre"`
	LastName             string    `db:"apellido" json:"apellido"`
	Relationship         string    `db:"parentesco" json:"parentesco"`
	Phone                *string   `db:"telefono" json:"telefono,omitempty"`
	Email                *string   `db:"email" json:"email,omitempty"`
	IsPrimary            bool      `db:"es_principal" json:"es_principal"`
	NotificationsEnabled bool      `db:"notificaciones_activas" json:"notificaciones_activas"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}
