package clinicalnote

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.paciente_id, e.fecha_registro, e.estado_general, e.descripcion,
		       e.plan_tratamiento, e.observaciones_familiares, e.medico_id,
		       m.nombre || ' ' || m.apellido
		FROM evoluciones_clinicas e
		JOIN medicos m ON e.medico_id = m.id
		WHERE e.paciente_id = $1
		ORDER BY e.fecha_registro DESC
		LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.PatientID, &n.RecordedAt, &n.GeneralState,
			&n.Description, &n.TreatmentPlan, &n.Observations,
			&n.PhysicianID, &n.PhysicianName); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

func (r *repoPG) Create(ctx context.Context, n *Note) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO evoluciones_clinicas
		(paciente_id, fecha_registro, estado_general, descripcion, plan_tratamiento, observaciones_familiares, medico_id)
		VALUES ($1, NOW(), $2, $3, $4, $5, $6)
		RETURNING id, fecha_registro`,
		n.PatientID, n.GeneralState, n.Description, n.TreatmentPlan,
		n.Observations, n.PhysicianID).
		Scan(&n.ID, &n.RecordedAt)
}

func (r *repoPG) CountCriticalPatients(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT paciente_id)
		FROM evoluciones_clinicas
		WHERE estado_general = $1 AND fecha_registro > $2`,
		StateCritical, since).Scan(&count)
	return count, err
}
