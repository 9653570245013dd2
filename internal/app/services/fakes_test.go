package services

import (
	"context"
	"sort"
	"time"

	"github.com/appderecho/backend/internal/app/models"
	"github.com/appderecho/backend/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) add(u *models.User) *models.User {
	clone := *u
	clone.ID = f.nextID
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	f.nextID++
	f.users[clone.ID] = &clone
	return &clone
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user *models.User) (*models.User, error) {
	stored, ok := f.users[user.ID]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Phone = user.Phone
	stored.Address = user.Address
	stored.UpdatedAt = time.Now()
	clone := *stored
	return &clone, nil
}

func (f *fakeUserStore) UpdatePasswordHash(_ context.Context, userID int64, hash string) error {
	stored, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	stored.PasswordHash = hash
	return nil
}

func (f *fakeUserStore) TouchLastAccess(_ context.Context, userID int64) error {
	stored, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	stored.LastAccessAt = &now
	return nil
}

type fakeRosterStore struct {
	nextID   int64
	students map[int64]*models.PendingStudent
	users    *fakeUserStore
}

func newFakeRosterStore(users *fakeUserStore) *fakeRosterStore {
	return &fakeRosterStore{
		nextID:   1,
		students: make(map[int64]*models.PendingStudent),
		users:    users,
	}
}

func (f *fakeRosterStore) Create(_ context.Context, s *models.PendingStudent) (*models.PendingStudent, error) {
	for _, existing := range f.students {
		if existing.Code == s.Code {
			return nil, apperrors.ErrConflict
		}
		if existing.DocumentID == s.DocumentID {
			return nil, apperrors.ErrDocumentIDExists
		}
		if existing.Email == s.Email {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}
	clone := *s
	clone.ID = f.nextID
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	f.nextID++
	f.students[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (f *fakeRosterStore) FindByID(_ context.Context, id int64) (*models.PendingStudent, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeRosterStore) FindByCode(_ context.Context, code string) (*models.PendingStudent, error) {
	for _, s := range f.students {
		if s.Code == code && s.IsActive {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeRosterStore) FindByDocumentID(_ context.Context, documentID string) (*models.PendingStudent, error) {
	for _, s := range f.students {
		if s.DocumentID == documentID && s.IsActive {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeRosterStore) ExistsByCode(_ context.Context, code string) (bool, error) {
	for _, s := range f.students {
		if s.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRosterStore) List(_ context.Context) ([]*models.PendingStudent, error) {
	var out []*models.PendingStudent
	for _, s := range f.students {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeRosterStore) Update(_ context.Context, s *models.PendingStudent) (*models.PendingStudent, error) {
	stored, ok := f.students[s.ID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	stored.FirstName = s.FirstName
	stored.LastName = s.LastName
	stored.Email = s.Email
	stored.DocumentID = s.DocumentID
	stored.Semester = s.Semester
	stored.UpdatedAt = time.Now()

	if stored.Status == models.StatusRegistered {
		for _, u := range f.users.users {
			if u.StudentCode != nil && *u.StudentCode == stored.Code {
				u.FirstName = stored.FirstName
				u.LastName = stored.LastName
				u.Email = stored.Email
				u.DocumentID = &stored.DocumentID
				u.Semester = &stored.Semester
			}
		}
	}
	clone := *stored
	return &clone, nil
}

func (f *fakeRosterStore) Delete(_ context.Context, id int64) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for uid, u := range f.users.users {
		if u.StudentCode != nil && *u.StudentCode == s.Code {
			delete(f.users.users, uid)
		}
	}
	delete(f.students, id)
	return nil
}

func (f *fakeRosterStore) CompleteRegistration(_ context.Context, studentID int64, user *models.User) (*models.User, error) {
	s, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if s.Status != models.StatusPending {
		return nil, apperrors.ErrCodeAlreadyUsed
	}
	created := f.users.add(user)
	s.Status = models.StatusRegistered
	return created, nil
}

type fakeResetStore struct {
	nextID int64
	tokens []*models.PasswordResetToken
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{nextID: 1}
}

func (f *fakeResetStore) Create(_ context.Context, token *models.PasswordResetToken) (*models.PasswordResetToken, error) {
	for _, t := range f.tokens {
		if t.UserID == token.UserID && !t.Used {
			t.Used = true
		}
	}
	clone := *token
	clone.ID = f.nextID
	clone.CreatedAt = time.Now()
	f.nextID++
	f.tokens = append(f.tokens, &clone)
	out := clone
	return &out, nil
}

func (f *fakeResetStore) FindActive(_ context.Context, email, code string) (*models.PasswordResetToken, error) {
	for i := len(f.tokens) - 1; i >= 0; i-- {
		t := f.tokens[i]
		if t.Email == email && t.Code == code && !t.Used && time.Now().Before(t.ExpiresAt) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, apperrors.ErrResetCodeInvalid
}

func (f *fakeResetStore) MarkUsed(_ context.Context, tokenID, userID int64) error {
	var target *models.PasswordResetToken
	for _, t := range f.tokens {
		if t.ID == tokenID {
			target = t
		}
	}
	if target == nil || target.Used {
		return apperrors.ErrResetCodeUsed
	}
	for _, t := range f.tokens {
		if t.UserID == userID {
			t.Used = true
		}
	}
	return nil
}

type fakeIntakeStore struct {
	nextID  int64
	records map[int64]*models.IntakeRecord
}

func newFakeIntakeStore() *fakeIntakeStore {
	return &fakeIntakeStore{nextID: 1, records: make(map[int64]*models.IntakeRecord)}
}

func (f *fakeIntakeStore) Create(_ context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error) {
	clone := *rec
	clone.ID = f.nextID
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	f.nextID++
	f.records[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (f *fakeIntakeStore) FindByID(_ context.Context, id int64) (*models.IntakeRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, apperrors.ErrIntakeRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (f *fakeIntakeStore) ListAll(_ context.Context) ([]*models.IntakeRecord, error) {
	var out []*models.IntakeRecord
	for _, rec := range f.records {
		clone := *rec
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeIntakeStore) ListVisibleToStudent(_ context.Context, userID int64) ([]*models.IntakeRecord, error) {
	var out []*models.IntakeRecord
	for _, rec := range f.records {
		if rec.IsActive && rec.CreatedBy == userID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeIntakeStore) Update(_ context.Context, rec *models.IntakeRecord) (*models.IntakeRecord, error) {
	stored, ok := f.records[rec.ID]
	if !ok {
		return nil, apperrors.ErrIntakeRecordNotFound
	}
	updated := *rec
	updated.CreatedBy = stored.CreatedBy
	updated.IsActive = stored.IsActive
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	f.records[rec.ID] = &updated
	clone := updated
	return &clone, nil
}

func (f *fakeIntakeStore) SetActive(_ context.Context, id int64, active bool) error {
	rec, ok := f.records[id]
	if !ok {
		return apperrors.ErrIntakeRecordNotFound
	}
	rec.IsActive = active
	rec.UpdatedAt = time.Now()
	return nil
}

type sentMail struct {
	kind string
	to   string
	code string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) SendPasswordResetCode(to, _, code string) error {
	f.sent = append(f.sent, sentMail{kind: "reset", to: to, code: code})
	return nil
}

func (f *fakeMailer) SendWelcome(to, _, studentCode string) error {
	f.sent = append(f.sent, sentMail{kind: "welcome", to: to, code: studentCode})
	return nil
}
