package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, nombre, apellido, cedula, fecha_nacimiento, sexo, telefono, eps, tipo_sangre, activo, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DocumentID, &p.BirthDate,
		&p.Sex, &p.Phone, &p.Insurer, &p.BloodType, &p.Active, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM pacientes WHERE activo = TRUE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+`
		FROM pacientes
		WHERE activo = TRUE
		ORDER BY id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}

func (r *repoPG) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM pacientes WHERE activo = TRUE`).Scan(&n)
	return n, err
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		SELECT `+patientCols+`
		FROM pacientes
		WHERE id = $1 AND activo = TRUE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	var d Detail
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.nombre, p.apellido, p.cedula, p.fecha_nacimiento, p.sexo,
		       p.telefono, p.eps, p.tipo_sangre, p.activo, p.created_at,
		       COUNT(c.id), MAX(c.fecha_programada)
		FROM pacientes p
		LEFT JOIN cirugias c ON p.id = c.paciente_id
		WHERE p.id = $1 AND p.activo = TRUE
		GROUP BY p.id`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.DocumentID, &d.BirthDate, &d.Sex,
			&d.Phone, &d.Insurer, &d.BloodType, &d.Active, &d.CreatedAt,
			&d.TotalSurgeries, &d.LastSurgeryAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
