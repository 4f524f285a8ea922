package familyaccess

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) ResolveActivePair(ctx context.Context, patientCode, familyCode string) (*AccessCode, error) {
	var ac AccessCode
	err := r.pool.QueryRow(ctx, `
		SELECT cf.id, cf.paciente_id, cf.contacto_id, cf.codigo_paciente, cf.codigo_familiar,
		       cf.activo, cf.fecha_expiracion, cf.created_at
		FROM codigos_familiares cf
		JOIN pacientes p ON cf.paciente_id = p.id
		WHERE cf.codigo_paciente = $1 AND cf.codigo_familiar = $2
		  AND cf.activo = TRUE AND p.activo = TRUE
		  AND (cf.fecha_expiracion IS NULL OR cf.fecha_expiracion > NOW())`,
		patientCode, familyCode).
		Scan(&ac.ID, &ac.PatientID, &ac.ContactID, &ac.PatientCode, &ac.FamilyCode,
			&ac.Active, &ac.ExpiresAt, &ac.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ac, nil
}
