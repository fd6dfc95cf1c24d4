package handler

import (
	"context"
	"strings"
	"time"

	"github.com/campushub/teacher-service/internal/model"
	"gorm.io/gorm"
)

// memStore is an in-memory backend implementing both the credential and
// profile store interfaces, with the same lookup semantics the real
// repositories get from Postgres.
type memStore struct {
	users    []*model.User
	teachers []*model.Teacher
	nextID   uint
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) GetByID(_ context.Context, id uint) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetActiveByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) CreateWithProfile(_ context.Context, user *model.User, teacher *model.Teacher) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}

	now := time.Now()
	user.ID = m.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	teacher.ID = m.nextID
	teacher.UserID = user.ID
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	m.nextID++

	m.users = append(m.users, user)
	m.teachers = append(m.teachers, teacher)
	return nil
}

func (m *memStore) Deactivate(_ context.Context, id uint) error {
	for _, u := range m.users {
		if u.ID == id {
			u.IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memStore) GetWithTeacher(_ context.Context, userID uint) (*model.UserWithTeacher, error) {
	for _, u := range m.users {
		if u.ID != userID {
			continue
		}
		row := &model.UserWithTeacher{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			IsActive:  u.IsActive,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		}
		for _, t := range m.teachers {
			if t.UserID == userID {
				row.UniversityName = &t.UniversityName
				row.Gender = &t.Gender
				row.YearJoined = &t.YearJoined
				break
			}
		}
		return row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetByUserID(_ context.Context, userID uint) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// profileView adapts memStore to service.ProfileStore. Both store
// interfaces declare GetByID with different return types, so one struct
// cannot satisfy both; this wrapper overrides only the teacher-side
// lookup and promotes the rest.
type profileView struct {
	*memStore
}

func (p profileView) GetByID(_ context.Context, id uint) (*model.Teacher, error) {
	return p.getTeacherByID(id)
}

func (m *memStore) getTeacherByID(id uint) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) joined(t *model.Teacher) model.TeacherWithUser {
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
	for _, u := range m.users {
		if u.ID == t.UserID {
			row.FirstName = u.FirstName
			row.LastName = u.LastName
			row.Email = u.Email
			break
		}
	}
	return row
}

func (m *memStore) GetAllWithUser(_ context.Context) ([]model.TeacherWithUser, error) {
	rows := make([]model.TeacherWithUser, 0, len(m.teachers))
	for i := len(m.teachers) - 1; i >= 0; i-- {
		rows = append(rows, m.joined(m.teachers[i]))
	}
	return rows, nil
}

func (m *memStore) GetWithUser(_ context.Context, teacherID uint) (*model.TeacherWithUser, error) {
	t, err := m.getTeacherByID(teacherID)
	if err != nil {
		return nil, err
	}
	row := m.joined(t)
	return &row, nil
}

func (m *memStore) Search(_ context.Context, term string) ([]model.TeacherWithUser, error) {
	needle := strings.ToLower(term)
	var rows []model.TeacherWithUser
	for i := len(m.teachers) - 1; i >= 0; i-- {
		row := m.joined(m.teachers[i])
		fields := []string{row.FirstName, row.LastName, row.Email, row.UniversityName}
		if row.Department != nil {
			fields = append(fields, *row.Department)
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				rows = append(rows, row)
				break
			}
		}
	}
	return rows, nil
}

func (m *memStore) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	t, err := m.getTeacherByID(id)
	if err != nil {
		return err
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
