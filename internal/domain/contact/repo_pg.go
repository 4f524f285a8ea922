package contact

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvega09/SIACOM/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

const contactCols = `id, paciente_id, nombre, apellido, parentesco, telefono, email, es_principal, notificaciones_activas, created_at`

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Contact, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM contactos`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+contactCols+` FROM contactos
		ORDER BY paciente_id, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := scanContacts(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repoPG) ListNotifiableByPatient(ctx context.Context, patientID int64) ([]*Contact, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+contactCols+` FROM contactos
		WHERE paciente_id = $1 AND notificaciones_activas = TRUE
		ORDER BY id`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContacts(rows)
}

func scanContacts(rows pgx.Rows) ([]*Contact, error) {
	var items []*Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.PatientID, &c.FirstName, &c.LastName,
			&c.Relationship, &c.Phone, &c.Email, &c.IsPrimary,
			&c.NotificationsEnabled, &c.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}
