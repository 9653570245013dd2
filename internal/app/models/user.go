package models

import "time"

// User represents a user account
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	RoleType     UserRole

	// Student metadata, populated only for accounts created from a roster entry
	StudentCode *string
	Program     *string
	Semester    *int
	DocumentID  *string

	// Contact information
	Phone   *string
	Address *string

	IsActive      bool
	EmailVerified bool
	LastAccessAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName returns the display name used on intake records and emails
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
