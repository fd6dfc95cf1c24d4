package service

import (
	"context"

	"github.com/campushub/teacher-service/internal/model"
)

// CredentialStore is the persistence boundary for user identity
// records. Implemented by repository.UserRepository.
type CredentialStore interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*model.User, error)
	CreateWithProfile(ctx context.Context, user *model.User, teacher *model.Teacher) error
	Deactivate(ctx context.Context, id uint) error
	GetWithTeacher(ctx context.Context, userID uint) (*model.UserWithTeacher, error)
}

// ProfileStore is the persistence boundary for teacher profiles.
// Implemented by repository.TeacherRepository.
type ProfileStore interface {
	GetByID(ctx context.Context, id uint) (*model.Teacher, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Teacher, error)
	GetAllWithUser(ctx context.Context) ([]model.TeacherWithUser, error)
	GetWithUser(ctx context.Context, teacherID uint) (*model.TeacherWithUser, error)
	Search(ctx context.Context, term string) ([]model.TeacherWithUser, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
}
