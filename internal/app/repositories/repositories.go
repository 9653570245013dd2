// Package repositories implements the PostgreSQL persistence layer.
package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/appderecho/backend/internal/db"
)

// Repositories aggregates all repository implementations.
type Repositories struct {
	Users         *UserRepository
	Roster        *RosterRepository
	PasswordReset *PasswordResetTokenRepository
	Intake        *IntakeRepository
}

// NewRepositories creates all repositories on the shared database
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Roster:        NewRosterRepository(database),
		PasswordReset: NewPasswordResetTokenRepository(database),
		Intake:        NewIntakeRepository(database),
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation, optionally on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
