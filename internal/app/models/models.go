// Package models contains the database entities of the application.
package models

// UserRole defines the role of a user in the system
type UserRole string

const (
	// RoleCoordinator manages the pre-registration roster and all intake records
	RoleCoordinator UserRole = "coordinador"
	// RoleStudent is created through the gated self-registration flow
	RoleStudent UserRole = "estudiante"
)

// RegistrationStatus defines the lifecycle state of a roster entry
type RegistrationStatus string

const (
	// StatusPending means the entry has not been claimed by a student yet
	StatusPending RegistrationStatus = "Pendiente"
	// StatusRegistered means a user account was created from this entry.
	// The transition is one-way.
	StatusRegistered RegistrationStatus = "Registrado"
)

// DefaultProgram is the academic program every roster entry belongs to
const DefaultProgram = "Derecho"
