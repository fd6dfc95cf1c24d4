package service

import (
	"context"
	"strings"
	"time"

	"github.com/campushub/teacher-service/internal/model"
	"gorm.io/gorm"
)

// fakeCredentialStore is an in-memory CredentialStore that mimics the
// semantics the real repository gets from Postgres: case-insensitive
// email lookups and a unique constraint on email.
type fakeCredentialStore struct {
	users    []*model.User
	profiles *fakeProfileStore
	nextID   uint

	createErr     error
	deactivateIDs []uint
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{nextID: 1}
}

// newTestStores returns a credential and profile store sharing state,
// so CreateWithProfile lands in both like the real transaction does.
func newTestStores() (*fakeCredentialStore, *fakeProfileStore) {
	creds := newFakeCredentialStore()
	profiles := newFakeProfileStore(creds)
	creds.profiles = profiles
	return creds, profiles
}

func (f *fakeCredentialStore) GetByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCredentialStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCredentialStore) GetActiveByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCredentialStore) CreateWithProfile(_ context.Context, user *model.User, teacher *model.Teacher) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}

	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.nextID++

	teacher.ID = user.ID
	teacher.UserID = user.ID
	teacher.CreatedAt = user.CreatedAt
	teacher.UpdatedAt = user.CreatedAt

	f.users = append(f.users, user)
	if f.profiles != nil {
		f.profiles.add(teacher)
	}
	return nil
}

func (f *fakeCredentialStore) Deactivate(_ context.Context, id uint) error {
	for _, u := range f.users {
		if u.ID == id {
			u.IsActive = false
			f.deactivateIDs = append(f.deactivateIDs, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCredentialStore) GetWithTeacher(_ context.Context, userID uint) (*model.UserWithTeacher, error) {
	for _, u := range f.users {
		if u.ID == userID {
			row := &model.UserWithTeacher{
				ID:        u.ID,
				Email:     u.Email,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				IsActive:  u.IsActive,
				CreatedAt: u.CreatedAt,
				UpdatedAt: u.UpdatedAt,
			}
			if f.profiles != nil {
				for _, t := range f.profiles.teachers {
					if t.UserID == u.ID {
						row.UniversityName = &t.UniversityName
						row.Gender = &t.Gender
						row.YearJoined = &t.YearJoined
						break
					}
				}
			}
			return row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// fakeProfileStore is an in-memory ProfileStore. Joined reads resolve
// identity columns through the paired credential store.
type fakeProfileStore struct {
	teachers []*model.Teacher
	creds    *fakeCredentialStore
	nextID   uint

	searchErr error
	updateErr error
}

func newFakeProfileStore(creds *fakeCredentialStore) *fakeProfileStore {
	return &fakeProfileStore{creds: creds, nextID: 1}
}

func (f *fakeProfileStore) add(t *model.Teacher) *model.Teacher {
	if t.ID == 0 {
		t.ID = f.nextID
	}
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
	f.teachers = append(f.teachers, t)
	return t
}

func (f *fakeProfileStore) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	for _, t := range f.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) GetByUserID(_ context.Context, userID uint) (*model.Teacher, error) {
	for _, t := range f.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) joined(t *model.Teacher) model.TeacherWithUser {
	row := model.TeacherWithUser{
		ID:              t.ID,
		UserID:          t.UserID,
		UniversityName:  t.UniversityName,
		Gender:          t.Gender,
		YearJoined:      t.YearJoined,
		Department:      t.Department,
		Qualification:   t.Qualification,
		ExperienceYears: t.ExperienceYears,
		Specialization:  t.Specialization,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if u, err := f.creds.GetByID(context.Background(), t.UserID); err == nil {
		row.FirstName = u.FirstName
		row.LastName = u.LastName
		row.Email = u.Email
	}
	return row
}

func (f *fakeProfileStore) GetAllWithUser(_ context.Context) ([]model.TeacherWithUser, error) {
	rows := make([]model.TeacherWithUser, 0, len(f.teachers))
	// newest first
	for i := len(f.teachers) - 1; i >= 0; i-- {
		rows = append(rows, f.joined(f.teachers[i]))
	}
	return rows, nil
}

func (f *fakeProfileStore) GetWithUser(_ context.Context, teacherID uint) (*model.TeacherWithUser, error) {
	for _, t := range f.teachers {
		if t.ID == teacherID {
			row := f.joined(t)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileStore) Search(_ context.Context, term string) ([]model.TeacherWithUser, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	needle := strings.ToLower(term)
	var rows []model.TeacherWithUser
	for i := len(f.teachers) - 1; i >= 0; i-- {
		row := f.joined(f.teachers[i])
		haystacks := []string{row.FirstName, row.LastName, row.Email, row.UniversityName}
		if row.Department != nil {
			haystacks = append(haystacks, *row.Department)
		}
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), needle) {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows, nil
}

func (f *fakeProfileStore) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, t := range f.teachers {
		if t.ID != id {
			continue
		}
		if v, ok := fields["university_name"].(string); ok {
			t.UniversityName = v
		}
		if v, ok := fields["gender"].(string); ok {
			t.Gender = v
		}
		if v, ok := fields["year_joined"].(int); ok {
			t.YearJoined = v
		}
		if v, ok := fields["department"].(*string); ok {
			t.Department = v
		}
		if v, ok := fields["qualification"].(*string); ok {
			t.Qualification = v
		}
		if v, ok := fields["experience_years"].(int); ok {
			t.ExperienceYears = v
		}
		if v, ok := fields["specialization"].(*string); ok {
			t.Specialization = v
		}
		t.UpdatedAt = time.Now()
		return nil
	}
	return gorm.ErrRecordNotFound
}
