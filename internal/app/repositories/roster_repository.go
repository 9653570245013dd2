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

const rosterColumns = `id, codigo, nombres, apellidos, email, documento_numero,
	programa, semestre, estado, activo, fecha_creacion, fecha_actualizacion`

// RosterRepository persists the roster of pre-registered students.
type RosterRepository struct {
	db *db.PostgresDB
}

// NewRosterRepository creates a roster repository
func NewRosterRepository(database *db.PostgresDB) *RosterRepository {
	return &RosterRepository{db: database}
}

func scanPendingStudent(row pgx.Row) (*models.PendingStudent, error) {
	var s models.PendingStudent
	err := row.Scan(
		&s.ID, &s.Code, &s.FirstName, &s.LastName, &s.Email, &s.DocumentID,
		&s.Program, &s.Semester, &s.Status, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("scanning roster entry: %w", err)
	}
	return &s, nil
}

// Create inserts a roster entry.
func (r *RosterRepository) Create(ctx context.Context, s *models.PendingStudent) (*models.PendingStudent, error) {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO estudiantes_validos
			(codigo, nombres, apellidos, email, documento_numero, programa, semestre, estado, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+rosterColumns,
		s.Code, s.FirstName, s.LastName, s.Email, s.DocumentID,
		s.Program, s.Semester, s.Status, s.IsActive,
	)
	created, err := scanPendingStudent(row)
	if err != nil {
		switch {
		case isUniqueViolation(err, "estudiantes_validos_codigo_key"):
			return nil, apperrors.ErrConflict
		case isUniqueViolation(err, "estudiantes_validos_documento_numero_key"):
			return nil, apperrors.ErrDocumentIDExists
		case isUniqueViolation(err, "estudiantes_validos_email_key"):
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// FindByID looks up a roster entry by primary key.
func (r *RosterRepository) FindByID(ctx context.Context, id int64) (*models.PendingStudent, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+rosterColumns+` FROM estudiantes_validos WHERE id = $1`, id)
	return scanPendingStudent(row)
}

// FindByCode looks up an active roster entry by student code.
func (r *RosterRepository) FindByCode(ctx context.Context, code string) (*models.PendingStudent, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+rosterColumns+` FROM estudiantes_validos
		 WHERE codigo = $1 AND activo = TRUE`, code)
	return scanPendingStudent(row)
}

// FindByDocumentID looks up an active roster entry by document number.
func (r *RosterRepository) FindByDocumentID(ctx context.Context, documentID string) (*models.PendingStudent, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+rosterColumns+` FROM estudiantes_validos
		 WHERE documento_numero = $1 AND activo = TRUE`, documentID)
	return scanPendingStudent(row)
}

// ExistsByCode reports whether a roster entry with the given code exists.
func (r *RosterRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM estudiantes_validos WHERE codigo = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking code existence: %w", err)
	}
	return exists, nil
}

// List returns all roster entries, newest first.
func (r *RosterRepository) List(ctx context.Context) ([]*models.PendingStudent, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+rosterColumns+` FROM estudiantes_validos ORDER BY fecha_creacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing roster: %w", err)
	}
	defer rows.Close()

	var students []*models.PendingStudent
	for rows.Next() {
		s, err := scanPendingStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Update persists the editable fields of a roster entry and propagates the
// change to the registered user account, when one exists, in one transaction.
func (r *RosterRepository) Update(ctx context.Context, s *models.PendingStudent) (*models.PendingStudent, error) {
	var updated *models.PendingStudent
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE estudiantes_validos
			SET nombres = $2, apellidos = $3, email = $4, documento_numero = $5,
				semestre = $6, fecha_actualizacion = now()
			WHERE id = $1
			RETURNING `+rosterColumns,
			s.ID, s.FirstName, s.LastName, s.Email, s.DocumentID, s.Semester,
		)
		var err error
		updated, err = scanPendingStudent(row)
		if err != nil {
			switch {
			case isUniqueViolation(err, "estudiantes_validos_email_key"):
				return apperrors.ErrEmailAlreadyExists
			case isUniqueViolation(err, "estudiantes_validos_documento_numero_key"):
				return apperrors.ErrDocumentIDExists
			}
			return err
		}

		if updated.Status == models.StatusRegistered {
			_, err = tx.Exec(ctx, `
				UPDATE users
				SET nombres = $2, apellidos = $3, email = $4, documento_numero = $5,
					semestre = $6, fecha_actualizacion = now()
				WHERE codigo_estudiante = $1`,
				updated.Code, updated.FirstName, updated.LastName, updated.Email,
				updated.DocumentID, updated.Semester,
			)
			if err != nil {
				return fmt.Errorf("propagating roster update to user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a roster entry together with the user account that was
// registered from it, in one transaction.
func (r *RosterRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`SELECT `+rosterColumns+` FROM estudiantes_validos WHERE id = $1`, id)
		s, err := scanPendingStudent(row)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM users WHERE codigo_estudiante = $1`, s.Code); err != nil {
			return fmt.Errorf("deleting registered user: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM estudiantes_validos WHERE id = $1`, id); err != nil {
			return fmt.Errorf("deleting roster entry: %w", err)
		}
		return nil
	})
}

// CompleteRegistration creates the user account and flips the roster entry to
// registered, atomically.
func (r *RosterRepository) CompleteRegistration(ctx context.Context, studentID int64, user *models.User) (*models.User, error) {
	var created *models.User
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (nombres, apellidos, email, password_hash, rol,
				codigo_estudiante, programa, semestre, documento_numero, celular, direccion,
				activo, email_verificado)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING `+userColumns,
			user.FirstName, user.LastName, user.Email, user.PasswordHash, user.RoleType,
			user.StudentCode, user.Program, user.Semester, user.DocumentID, user.Phone,
			user.Address, user.IsActive, user.EmailVerified,
		)
		var err error
		created, err = scanUser(row)
		if err != nil {
			if isUniqueViolation(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE estudiantes_validos
			SET estado = $2, fecha_actualizacion = now()
			WHERE id = $1 AND estado = $3`,
			studentID, models.StatusRegistered, models.StatusPending,
		)
		if err != nil {
			return fmt.Errorf("marking roster entry registered: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrCodeAlreadyUsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
