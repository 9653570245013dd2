package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/db"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// PasswordResetTokenRepository persists password reset codes.
type PasswordResetTokenRepository struct {
	db *db.PostgresDB
}

// NewPasswordResetTokenRepository creates a password reset token repository
func NewPasswordResetTokenRepository(database *db.PostgresDB) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{db: database}
}

// Create stores a new reset code after invalidating every unused code of the
// same user, so at most one code is redeemable at a time.
func (r *PasswordResetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) (*models.PasswordResetToken, error) {
	var created *models.PasswordResetToken
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE password_reset_tokens SET usado = TRUE WHERE user_id = $1 AND usado = FALSE`,
			token.UserID); err != nil {
			return fmt.Errorf("invalidating previous reset codes: %w", err)
		}

		row := tx.QueryRow(ctx, `
			INSERT INTO password_reset_tokens (user_id, email, codigo, expira_en, usado)
			VALUES ($1, $2, $3, $4, FALSE)
			RETURNING id, user_id, email, codigo, expira_en, usado, fecha_creacion`,
			token.UserID, token.Email, token.Code, token.ExpiresAt,
		)
		var t models.PasswordResetToken
		if err := row.Scan(&t.ID, &t.UserID, &t.Email, &t.Code, &t.ExpiresAt, &t.Used, &t.CreatedAt); err != nil {
			return fmt.Errorf("inserting reset code: %w", err)
		}
		created = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// FindActive returns the unused, unexpired code matching email and code.
func (r *PasswordResetTokenRepository) FindActive(ctx context.Context, email, code string) (*models.PasswordResetToken, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, email, codigo, expira_en, usado, fecha_creacion
		FROM password_reset_tokens
		WHERE lower(email) = lower($1) AND codigo = $2 AND usado = FALSE AND expira_en > $3
		ORDER BY fecha_creacion DESC
		LIMIT 1`,
		email, code, time.Now(),
	)
	var t models.PasswordResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.Email, &t.Code, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResetCodeInvalid
		}
		return nil, fmt.Errorf("finding reset code: %w", err)
	}
	return &t, nil
}

// MarkUsed consumes a reset code and invalidates every other unused code of
// the same user. Returns ErrResetCodeUsed when the code was already consumed
// by a concurrent request.
func (r *PasswordResetTokenRepository) MarkUsed(ctx context.Context, tokenID, userID int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE password_reset_tokens SET usado = TRUE WHERE id = $1 AND usado = FALSE`, tokenID)
		if err != nil {
			return fmt.Errorf("marking reset code used: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrResetCodeUsed
		}
		if _, err := tx.Exec(ctx,
			`UPDATE password_reset_tokens SET usado = TRUE WHERE user_id = $1 AND usado = FALSE`,
			userID); err != nil {
			return fmt.Errorf("invalidating sibling reset codes: %w", err)
		}
		return nil
	})
}
