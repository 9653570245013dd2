package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

var codePattern = regexp.MustCompile(`^DER\d{4}[0-9A-F]{4}$`)

func newRosterFixture(t *testing.T) (*RosterService, *fakeRosterStore, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	roster := newFakeRosterStore(users)
	return NewRosterService(roster), roster, users
}

func TestRosterCreate(t *testing.T) {
	svc, _, _ := newRosterFixture(t)

	student, err := svc.Create(context.Background(),
		"Andrés", "Pardo", "andres.pardo@unicolmayor.edu.co", "52123456", 7)
	require.NoError(t, err)

	assert.Regexp(t, codePattern, student.Code)
	assert.Equal(t, models.StatusPending, student.Status)
	assert.Equal(t, models.DefaultProgram, student.Program)
	assert.True(t, student.IsActive)
}

func TestRosterCreateUniqueCodes(t *testing.T) {
	svc, _, _ := newRosterFixture(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		student, err := svc.Create(context.Background(),
			"Nombre", "Apellido",
			addrN(i), docN(i), 3)
		require.NoError(t, err)
		assert.False(t, seen[student.Code], "duplicate code %s", student.Code)
		seen[student.Code] = true
	}
}

func TestRosterNormalizesEmail(t *testing.T) {
	svc, _, _ := newRosterFixture(t)

	student, err := svc.Create(context.Background(),
		"Paula", "Niño", "  Paula.Nino@Unicolmayor.Edu.Co ", "52987654", 5)
	require.NoError(t, err)
	assert.Equal(t, "paula.nino@unicolmayor.edu.co", student.Email)

	newEmail := " PAULA.N@Unicolmayor.edu.co "
	updated, err := svc.Update(context.Background(), student.ID, nil, nil, &newEmail, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "paula.n@unicolmayor.edu.co", updated.Email)
}

func TestRosterCreateDuplicateDocument(t *testing.T) {
	svc, _, _ := newRosterFixture(t)

	_, err := svc.Create(context.Background(), "A", "B", "a@u.edu.co", "111", 1)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "C", "D", "c@u.edu.co", "111", 1)
	assert.ErrorIs(t, err, apperrors.ErrDocumentIDExists)
}

func TestRosterUpdatePropagatesToRegisteredUser(t *testing.T) {
	svc, roster, users := newRosterFixture(t)

	student, err := svc.Create(context.Background(),
		"Laura", "Gómez", "laura@u.edu.co", "100200300", 5)
	require.NoError(t, err)

	user, err := roster.CompleteRegistration(context.Background(), student.ID, &models.User{
		FirstName:   "Laura",
		LastName:    "Gómez",
		Email:       student.Email,
		RoleType:    models.RoleStudent,
		StudentCode: &student.Code,
		IsActive:    true,
	})
	require.NoError(t, err)

	newEmail := "laura.nueva@u.edu.co"
	newSemester := 8
	_, err = svc.Update(context.Background(), student.ID, nil, nil, &newEmail, nil, &newSemester)
	require.NoError(t, err)

	updatedUser, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, newEmail, updatedUser.Email)
	require.NotNil(t, updatedUser.Semester)
	assert.Equal(t, newSemester, *updatedUser.Semester)
}

func TestRosterDeleteRemovesRegisteredUser(t *testing.T) {
	svc, roster, users := newRosterFixture(t)

	student, err := svc.Create(context.Background(),
		"Laura", "Gómez", "laura@u.edu.co", "100200300", 5)
	require.NoError(t, err)

	user, err := roster.CompleteRegistration(context.Background(), student.ID, &models.User{
		Email:       student.Email,
		RoleType:    models.RoleStudent,
		StudentCode: &student.Code,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), student.ID))

	_, err = roster.FindByID(context.Background(), student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	_, err = users.FindByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func addrN(i int) string {
	return string(rune('a'+i%26)) + string(rune('a'+i/26)) + "@u.edu.co"
}

func docN(i int) string {
	return "9000" + string(rune('0'+i/10)) + string(rune('0'+i%10))
}
