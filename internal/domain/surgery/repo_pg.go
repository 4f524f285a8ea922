package surgery

import (
	"context"
	"errors"
	"time"

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

const surgeryCols = `c.id, c.paciente_id, c.tipo_cirugia_id, tc.nombre,
	c.medico_principal_id, m.nombre || ' ' || m.apellido,
	c.estado, c.fecha_programada, c.fecha_inicio, c.fecha_fin, c.sala, c.notas_preoperatorias`

const surgeryJoins = `
	FROM cirugias c
	JOIN tipos_cirugia tc ON c.tipo_cirugia_id = tc.id
	JOIN medicos m ON c.medico_principal_id = m.id`

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *repoPG) GetForUpdate(ctx context.Context, id int64) (*Surgery, error) {
	var s Surgery
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, paciente_id, tipo_cirugia_id, medico_principal_id,
		       estado, fecha_programada, fecha_inicio, fecha_fin, sala, notas_preoperatorias
		FROM cirugias WHERE id = $1
		FOR UPDATE`, id).
		Scan(&s.ID, &s.PatientID, &s.TypeID, &s.SurgeonID, &s.State,
			&s.ScheduledAt, &s.StartedAt, &s.EndedAt, &s.Room, &s.PreOpNotes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) UpdateState(ctx context.Context, id int64, state string, now time.Time) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE cirugias
		SET estado = $1,
		    fecha_inicio = CASE WHEN $1 = 'En_proceso' AND fecha_inicio IS NULL THEN $2 ELSE fecha_inicio END,
		    fecha_fin    = CASE WHEN $1 = 'Finalizada' AND fecha_fin    IS NULL THEN $2 ELSE fecha_fin    END
		WHERE id = $3`, state, now, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Surgery, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+surgeryCols+surgeryJoins+`
		WHERE c.paciente_id = $1
		ORDER BY c.fecha_programada DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSurgeries(rows)
}

func (r *repoPG) LatestByPatient(ctx context.Context, patientID int64) (*Surgery, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+surgeryCols+surgeryJoins+`
		WHERE c.paciente_id = $1
		ORDER BY c.fecha_programada DESC
		LIMIT 1`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items, err := scanSurgeries(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (r *repoPG) CountToday(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM cirugias
		WHERE fecha_programada::date = CURRENT_DATE`).Scan(&n)
	return n, err
}

func (r *repoPG) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM cirugias
		WHERE estado IN ('Pre-operatorio', 'En_proceso')`).Scan(&n)
	return n, err
}

func scanSurgeries(rows pgx.Rows) ([]*Surgery, error) {
	var items []*Surgery
	for rows.Next() {
		var s Surgery
		if err := rows.Scan(&s.ID, &s.PatientID, &s.TypeID, &s.TypeName,
			&s.SurgeonID, &s.SurgeonName, &s.State, &s.ScheduledAt,
			&s.StartedAt, &s.EndedAt, &s.Room, &s.PreOpNotes); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
