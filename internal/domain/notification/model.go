package notification

import "time"

// TypeStateChange is the notification type the surgery dispatcher emits.
const TypeStateChange = "cambio_estado"

// Notification maps to the notificaciones table. Rows are append-only:
// once sent they are never updated or deleted.
type Notification struct {
	ID        int64     `db:"id" json:"id"`
	ContactID int64     `db:"contacto_id" json:"contacto_id"`
	PatientID int64     `db:"paciente_id" json:"paciente_id"`
	SurgeryID *int64    `db:"cirugia_id" json:"cirugia_id,omitempty"`
	Type      string    `db:"tipo" json:"tipo"`
	Title     string    `db:"titulo" json:"titulo"`
	Message   string    `db:"mensaje" json:"mensaje"`
	SentAt    time.Time `db:"fecha_envio" json:"fecha_envio"`
}
