package models

import "time"

// ResetCodeTTL is how long a password reset code stays valid
const ResetCodeTTL = 15 * time.Minute

// PasswordResetToken is a single-use 6-digit code for recovering a password.
// Issuing a new code invalidates every unused code of the same user.
type PasswordResetToken struct {
	ID        int64
	UserID    int64
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsExpired reports whether the code is past its expiry
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
