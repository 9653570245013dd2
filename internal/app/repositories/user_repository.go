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

const userColumns = `id, nombres, apellidos, email, password_hash, rol,
	codigo_estudiante, programa, semestre, documento_numero, celular, direccion,
	activo, email_verificado, ultimo_acceso, fecha_creacion, fecha_actualizacion`

// UserRepository persists user accounts.
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.RoleType,
		&u.StudentCode, &u.Program, &u.Semester, &u.DocumentID, &u.Phone, &u.Address,
		&u.IsActive, &u.EmailVerified, &u.LastAccessAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}
	return &u, nil
}

// Create inserts a new user and returns it with generated fields populated.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO users (nombres, apellidos, email, password_hash, rol,
			codigo_estudiante, programa, semestre, documento_numero, celular, direccion,
			activo, email_verificado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+userColumns,
		user.FirstName, user.LastName, user.Email, user.PasswordHash, user.RoleType,
		user.StudentCode, user.Program, user.Semester, user.DocumentID, user.Phone,
		user.Address, user.IsActive, user.EmailVerified,
	)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return created, nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByEmail looks up a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

// UpdateProfile updates the mutable profile fields of a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
		UPDATE users
		SET nombres = $2, apellidos = $3, celular = $4, direccion = $5,
			fecha_actualizacion = now()
		WHERE id = $1
		RETURNING `+userColumns,
		user.ID, user.FirstName, user.LastName, user.Phone, user.Address,
	)
	return scanUser(row)
}

// UpdatePasswordHash replaces the stored password hash of a user.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, fecha_actualizacion = now()
		WHERE id = $1`, userID, hash)
	if err != nil {
		return fmt.Errorf("updating password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// TouchLastAccess records a successful login.
func (r *UserRepository) TouchLastAccess(ctx context.Context, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE users SET ultimo_acceso = now() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("updating last access: %w", err)
	}
	return nil
}
