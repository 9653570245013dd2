package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/db"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

const intakeColumns = `id, ciudad, fecha_dia, fecha_mes, fecha_ano,
	nombre_docente_responsable, nombre_estudiante, area_consulta,
	remitido_por, correo_electronico, nombre_consultante, edad,
	fecha_nacimiento_dia, fecha_nacimiento_mes, fecha_nacimiento_ano,
	lugar_nacimiento, sexo, tipo_documento, numero_documento, lugar_expedicion,
	direccion, barrio, estrato, numero_telefonico, numero_celular,
	estado_civil, escolaridad, profesion_oficio,
	descripcion_caso, concepto_estudiante, concepto_asesor,
	activo, created_by_id, created_at, updated_at`

// IntakeRepository persists intake records.
type IntakeRepository struct {
	db *db.PostgresDB
}

// NewIntakeRepository creates an intake repository
func NewIntakeRepository(database *db.PostgresDB) *IntakeRepository {
	return &IntakeRepository{db: database}
}

func scanIntakeRecord(row pgx.Row) (*models.IntakeRecord, error) {
	var rec models.IntakeRecord
	err := row.Scan(
		&rec.ID, &rec.City, &rec.DateDay, &rec.DateMonth, &rec.DateYear,
		&rec.InstructorName, &rec.StudentName, &rec.Area,
		&rec.ReferredBy, &rec.Email, &rec.ConsultantName, &rec.Age,
		&rec.BirthDay, &rec.BirthMonth, &rec.BirthYear,
		&rec.Birthplace, &rec.Sex, &rec.DocumentType, &rec.DocumentNumber, &rec.IssuePlace,
		&rec.Address, &rec.Neighborhood, &rec.Stratum, &rec.Phone, &rec.Mobile,
		&rec.MaritalStatus, &rec.EducationLevel, &rec.Occupation,
		&rec.CaseDescription, &rec.StudentOpinion, &rec.AdvisorOpinion,
		&rec.IsActive, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIntakeRecordNotFound
		}
		return nil, fmt.Errorf("scanning intake record: %w", err)
	}
	return &rec, nil
}

// Create inserts an intake record.
func (r *IntakeRepository) Create(ctx context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error) {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO controles_operativos (
			ciudad, fecha_dia, fecha_mes, fecha_ano,
			nombre_docente_responsable, nombre_estudiante, area_consulta,
			remitido_por, correo_electronico, nombre_consultante, edad,
			fecha_nacimiento_dia, fecha_nacimiento_mes, fecha_nacimiento_ano,
			lugar_nacimiento, sexo, tipo_documento, numero_documento, lugar_expedicion,
			direccion, barrio, estrato, numero_telefonico, numero_celular,
			estado_civil, escolaridad, profesion_oficio,
			descripcion_caso, concepto_estudiante, concepto_asesor,
			activo, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32)
		RETURNING `+intakeColumns,
		rec.City, rec.DateDay, rec.DateMonth, rec.DateYear,
		rec.InstructorName, rec.StudentName, rec.Area,
		rec.ReferredBy, rec.Email, rec.ConsultantName, rec.Age,
		rec.BirthDay, rec.BirthMonth, rec.BirthYear,
		rec.Birthplace, rec.Sex, rec.DocumentType, rec.DocumentNumber, rec.IssuePlace,
		rec.Address, rec.Neighborhood, rec.Stratum, rec.Phone, rec.Mobile,
		rec.MaritalStatus, rec.EducationLevel, rec.Occupation,
		rec.CaseDescription, rec.StudentOpinion, rec.AdvisorOpinion,
		rec.IsActive, rec.CreatedBy,
	)
	return scanIntakeRecord(row)
}

// FindByID looks up an intake record by primary key.
func (r *IntakeRepository) FindByID(ctx context.Context, id int64) (*models.IntakeRecord, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+intakeColumns+` FROM controles_operativos WHERE id = $1`, id)
	return scanIntakeRecord(row)
}

// ListAll returns every intake record, newest first.
func (r *IntakeRepository) ListAll(ctx context.Context) ([]*models.IntakeRecord, error) {
	return r.list(ctx,
		`SELECT `+intakeColumns+` FROM controles_operativos ORDER BY created_at DESC`)
}

// ListVisibleToStudent returns the records a student may see: only their
// own active records.
func (r *IntakeRepository) ListVisibleToStudent(ctx context.Context, userID int64) ([]*models.IntakeRecord, error) {
	return r.list(ctx,
		`SELECT `+intakeColumns+` FROM controles_operativos
		 WHERE activo = TRUE AND created_by_id = $1
		 ORDER BY created_at DESC`, userID)
}

func (r *IntakeRepository) list(ctx context.Context, sql string, args ...any) ([]*models.IntakeRecord, error) {
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("listing intake records: %w", err)
	}
	defer rows.Close()

	var records []*models.IntakeRecord
	for rows.Next() {
		rec, err := scanIntakeRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update replaces every editable field of an intake record.
func (r *IntakeRepository) Update(ctx context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error) {
	row := r.db.Pool.QueryRow(ctx, `
		UPDATE controles_operativos SET
			ciudad = $2, fecha_dia = $3, fecha_mes = $4, fecha_ano = $5,
			nombre_docente_responsable = $6, nombre_estudiante = $7, area_consulta = $8,
			remitido_por = $9, correo_electronico = $10, nombre_consultante = $11, edad = $12,
			fecha_nacimiento_dia = $13, fecha_nacimiento_mes = $14, fecha_nacimiento_ano = $15,
			lugar_nacimiento = $16, sexo = $17, tipo_documento = $18, numero_documento = $19,
			lugar_expedicion = $20, direccion = $21, barrio = $22, estrato = $23,
			numero_telefonico = $24, numero_celular = $25, estado_civil = $26,
			escolaridad = $27, profesion_oficio = $28, descripcion_caso = $29,
			concepto_estudiante = $30, concepto_asesor = $31, updated_at = now()
		WHERE id = $1
		RETURNING `+intakeColumns,
		rec.ID, rec.City, rec.DateDay, rec.DateMonth, rec.DateYear,
		rec.InstructorName, rec.StudentName, rec.Area,
		rec.ReferredBy, rec.Email, rec.ConsultantName, rec.Age,
		rec.BirthDay, rec.BirthMonth, rec.BirthYear,
		rec.Birthplace, rec.Sex, rec.DocumentType, rec.DocumentNumber, rec.IssuePlace,
		rec.Address, rec.Neighborhood, rec.Stratum, rec.Phone, rec.Mobile,
		rec.MaritalStatus, rec.EducationLevel, rec.Occupation,
		rec.CaseDescription, rec.StudentOpinion, rec.AdvisorOpinion,
	)
	return scanIntakeRecord(row)
}

// SetActive flips the active flag of an intake record.
func (r *IntakeRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE controles_operativos SET activo = $2, updated_at = now()
		WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("updating intake record state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIntakeRecordNotFound
	}
	return nil
}
