package vitals

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vitalCols = `id, paciente_id, fecha_registro, presion_sistolica, presion_diastolica,
	frecuencia_cardiaca, temperatura, saturacion_oxigeno, dolor_escala, registrado_por_medico_id`

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit int) ([]*VitalSigns, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vitalCols+` FROM signos_vitales
		WHERE paciente_id = $1
		ORDER BY fecha_registro DESC
		LIMIT $2`, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVitals(rows)
}

func (r *repoPG) LatestByPatient(ctx context.Context, patientID int64) (*VitalSigns, error) {
	items, err := r.ListByPatient(ctx, patientID, 1)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (r *repoPG) Create(ctx context.Context, v *VitalSigns) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO signos_vitales
		(paciente_id, fecha_registro, presion_sistolica, presion_diastolica,
		 frecuencia_cardiaca, temperatura, saturacion_oxigeno, dolor_escala, registrado_por_medico_id)
		VALUES ($1, NOW(), $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, fecha_registro`,
		v.PatientID, v.SystolicBP, v.DiastolicBP, v.HeartRate,
		v.Temperature, v.OxygenSaturation, v.PainScale, v.RecordedByID).
		Scan(&v.ID, &v.RecordedAt)
}

func scanVitals(rows pgx.Rows) ([]*VitalSigns, error) {
	var items []*VitalSigns
	for rows.Next() {
		var v VitalSigns
		if err := rows.Scan(&v.ID, &v.PatientID, &v.RecordedAt, &v.SystolicBP,
			&v.DiastolicBP, &v.HeartRate, &v.Temperature, &v.OxygenSaturation,
			&v.PainScale, &v.RecordedByID); err != nil {
			return nil, err
		}
		items = append(items, &v)
	}
	return items, rows.Err()
}
