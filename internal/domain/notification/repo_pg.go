package notification

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

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) CreateBatch(ctx context.Context, items []*Notification) error {
	for _, n := range items {
		err := r.conn(ctx).QueryRow(ctx, `
			INSERT INTO notificaciones (contacto_id, paciente_id, cirugia_id, tipo, titulo, mensaje, fecha_envio)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING id, fecha_envio`,
			n.ContactID, n.PatientID, n.SurgeryID, n.Type, n.Title, n.Message).
			Scan(&n.ID, &n.SentAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repoPG) ListRecentByPatient(ctx context.Context, patientID int64, limit int) ([]*Notification, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT DISTINCT n.id, n.contacto_id, n.paciente_id, n.cirugia_id, n.tipo, n.titulo, n.mensaje, n.fecha_envio
		FROM notificaciones n
		JOIN codigos_familiares cf ON cf.contacto_id = n.contacto_id
		WHERE cf.paciente_id = $1 AND cf.activo = TRUE
		ORDER BY n.fecha_envio DESC
		LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.ContactID, &n.PatientID, &n.SurgeryID,
			&n.Type, &n.Title, &n.Message, &n.SentAt); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}
