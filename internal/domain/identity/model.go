package identity

import "time"

// User maps to the usuarios table. Credentials are owned by this table and
// read-only to the rest of the service; the password hash never leaves the
// package in a response body.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"nombre" json:"nombre"`
	LastName     string    `db:"apellido" json:"apellido"`
	UserType     string    `db:"tipo_usuario" json:"tipo_usuario"`
	Active       bool      `db:"activo" json:"activo"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
