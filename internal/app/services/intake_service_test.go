package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
	"github.com/appderecho/backend/internal/pkg/pdf"
)

func newIntakeFixture(t *testing.T) (*IntakeService, *fakeIntakeStore, *fakeUserStore, *models.User, *models.User) {
	t.Helper()
	users := newFakeUserStore()
	coordinator := users.add(&models.User{
		FirstName: "Carmen",
		LastName:  "Rojas",
		Email:     "coordinador@u.edu.co",
		RoleType:  models.RoleCoordinator,
		IsActive:  true,
	})
	student := users.add(&models.User{
		FirstName: "Laura",
		LastName:  "Gómez",
		Email:     "laura@u.edu.co",
		RoleType:  models.RoleStudent,
		IsActive:  true,
	})
	intake := newFakeIntakeStore()
	svc := NewIntakeService(intake, users, pdf.NewGenerator(""))
	return svc, intake, users, coordinator, student
}

func sampleRecord(name string) *models.IntakeRecord {
	return &models.IntakeRecord{
		City:           models.DefaultCity,
		DateDay:        15,
		DateMonth:      3,
		DateYear:       2024,
		StudentName:    name,
		ConsultantName: "Pedro Pérez",
		DocumentNumber: "80123456",
		Sex:            models.SexMale,
		DocumentType:   models.DocTypeCC,
	}
}

func TestIntakeCreateForcesStudentName(t *testing.T) {
	svc, _, _, coordinator, student := newIntakeFixture(t)

	rec, err := svc.Create(context.Background(),
		sampleRecord("Nombre Inventado"), student.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Laura Gómez", rec.StudentName)
	assert.Equal(t, student.ID, rec.CreatedBy)
	assert.True(t, rec.IsActive)

	// Coordinators may set the student name freely.
	rec, err = svc.Create(context.Background(),
		sampleRecord("Nombre Libre"), coordinator.ID, models.RoleCoordinator)
	require.NoError(t, err)
	assert.Equal(t, "Nombre Libre", rec.StudentName)
}

func TestIntakeVisibility(t *testing.T) {
	svc, _, _, coordinator, student := newIntakeFixture(t)
	ctx := context.Background()

	own, err := svc.Create(ctx, sampleRecord(""), student.ID, models.RoleStudent)
	require.NoError(t, err)
	other, err := svc.Create(ctx, sampleRecord("Otro"), coordinator.ID, models.RoleCoordinator)
	require.NoError(t, err)

	// Deactivate the coordinator's record: students stop seeing it.
	require.NoError(t, svc.Deactivate(ctx, other.ID, models.RoleCoordinator))

	visible, err := svc.List(ctx, student.ID, models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, own.ID, visible[0].ID)

	// Coordinators still see everything.
	all, err := svc.List(ctx, coordinator.ID, models.RoleCoordinator)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Point lookups follow the same scoping.
	_, err = svc.Get(ctx, other.ID, student.ID, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrIntakeRecordNotFound)
	_, err = svc.Get(ctx, other.ID, coordinator.ID, models.RoleCoordinator)
	assert.NoError(t, err)
}

func TestIntakeStudentCannotSeeOthersActiveRecords(t *testing.T) {
	svc, _, users, _, student := newIntakeFixture(t)
	ctx := context.Background()

	other := users.add(&models.User{
		FirstName: "Andrés",
		LastName:  "Mora",
		Email:     "andres@u.edu.co",
		RoleType:  models.RoleStudent,
		IsActive:  true,
	})
	foreign, err := svc.Create(ctx, sampleRecord(""), other.ID, models.RoleStudent)
	require.NoError(t, err)
	require.True(t, foreign.IsActive)

	visible, err := svc.List(ctx, student.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.Get(ctx, foreign.ID, student.ID, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrIntakeRecordNotFound)

	// The owner still sees it.
	got, err := svc.Get(ctx, foreign.ID, other.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, foreign.ID, got.ID)
}

func TestIntakeOwnInactiveHidden(t *testing.T) {
	svc, _, _, _, student := newIntakeFixture(t)
	ctx := context.Background()

	own, err := svc.Create(ctx, sampleRecord(""), student.ID, models.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, own.ID, models.RoleCoordinator))

	_, err = svc.Get(ctx, own.ID, student.ID, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrIntakeRecordNotFound)

	visible, err := svc.List(ctx, student.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestIntakeUpdateCoordinatorOnly(t *testing.T) {
	svc, _, _, coordinator, _ := newIntakeFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRecord("X"), coordinator.ID, models.RoleCoordinator)
	require.NoError(t, err)

	newArea := "Familia"
	patch := &models.IntakeRecordPatch{Area: &newArea}

	_, err = svc.Update(ctx, rec.ID, patch, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.Update(ctx, rec.ID, patch, models.RoleCoordinator)
	require.NoError(t, err)
	require.NotNil(t, updated.Area)
	assert.Equal(t, "Familia", *updated.Area)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Pedro Pérez", updated.ConsultantName)
}

func TestIntakeDeactivateReactivateIdempotent(t *testing.T) {
	svc, intake, _, coordinator, _ := newIntakeFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRecord("X"), coordinator.ID, models.RoleCoordinator)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, rec.ID, models.RoleCoordinator))
	require.NoError(t, svc.Deactivate(ctx, rec.ID, models.RoleCoordinator))

	stored, err := intake.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	require.NoError(t, svc.Reactivate(ctx, rec.ID, models.RoleCoordinator))
	require.NoError(t, svc.Reactivate(ctx, rec.ID, models.RoleCoordinator))

	stored, err = intake.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	assert.ErrorIs(t, svc.Deactivate(ctx, rec.ID, models.RoleStudent), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.Reactivate(ctx, rec.ID, models.RoleStudent), apperrors.ErrPermissionDenied)
}

func TestIntakeGeneratePDF(t *testing.T) {
	svc, _, _, coordinator, student := newIntakeFixture(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleRecord(""), student.ID, models.RoleStudent)
	require.NoError(t, err)

	data, filename, err := svc.GeneratePDF(ctx, rec.ID, student.ID, models.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Regexp(t, `^control_operativo_\d+_\d{8}\.pdf$`, filename)

	// Another student's record is off limits, the coordinator's is not.
	otherStudent := int64(99)
	_, _, err = svc.GeneratePDF(ctx, rec.ID, otherStudent, models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	_, _, err = svc.GeneratePDF(ctx, rec.ID, coordinator.ID, models.RoleCoordinator)
	assert.NoError(t, err)

	// Inactive records cannot be exported.
	require.NoError(t, svc.Deactivate(ctx, rec.ID, models.RoleCoordinator))
	_, _, err = svc.GeneratePDF(ctx, rec.ID, coordinator.ID, models.RoleCoordinator)
	assert.ErrorIs(t, err, apperrors.ErrIntakeRecordNotFound)
}
