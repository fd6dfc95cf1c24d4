package repository

import (
	"context"
	"time"

	"github.com/campushub/teacher-service/internal/model"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetByID")

	start := time.Now()
	var user model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&user)

	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get user by ID").
			Uint("user_id", id).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &user, nil
}

// GetActiveByEmail finds an active user by email, case-insensitively.
// Deactivated accounts are invisible to this lookup so their
// credentials stop working.
func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetActiveByEmail")

	start := time.Now()
	var user model.User
	result := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND is_active = ?", email, true).
		First(&user)

	if result.Error != nil {
		logger.DebugWithContext(ctx, "Active user lookup by email failed").
			String("email", email).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &user, nil
}

// GetByEmail finds a user by email regardless of active state. Used by
// the duplicate-email check, where an inactive holder still blocks the
// address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetByEmail")

	var user model.User
	result := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// CreateWithProfile inserts a user and its teacher profile inside one
// transaction. Either both rows exist afterwards or neither does.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *model.User, teacher *model.Teacher) error {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "CreateWithProfile")

	logger.DebugWithContext(ctx, "Creating user with teacher profile").
		String("email", user.Email).
		String("university_name", teacher.UniversityName).
		Log()

	start := time.Now()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		teacher.UserID = user.ID
		return tx.Create(teacher).Error
	})

	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to create user with profile").
			String("email", user.Email).
			Duration(time.Since(start)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "User and teacher profile created").
		String("email", user.Email).
		Uint("user_id", user.ID).
		Uint("teacher_id", teacher.ID).
		Duration(time.Since(start)).
		Log()

	return nil
}

// Deactivate flips is_active to false. The row is kept; this is the
// only delete-equivalent in the system.
func (r *UserRepository) Deactivate(ctx context.Context, id uint) error {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "Deactivate")

	start := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to deactivate user").
			Uint("user_id", id).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return result.Error
	}

	if result.RowsAffected == 0 {
		logger.WarnWithContext(ctx, "No user found to deactivate").
			Uint("user_id", id).
			Log()
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "User deactivated").
		Uint("user_id", id).
		Duration(time.Since(start)).
		Log()

	return nil
}

// GetWithTeacher returns the user row left-joined with the academic
// columns of its teacher profile, if any.
func (r *UserRepository) GetWithTeacher(ctx context.Context, userID uint) (*model.UserWithTeacher, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetWithTeacher")

	start := time.Now()
	var row model.UserWithTeacher
	result := r.db.WithContext(ctx).
		Table("auth_user").
		Select("auth_user.id, auth_user.email, auth_user.first_name, auth_user.last_name, auth_user.is_active, auth_user.created_at, auth_user.updated_at, teachers.university_name, teachers.gender, teachers.year_joined").
		Joins("LEFT JOIN teachers ON teachers.user_id = auth_user.id").
		Where("auth_user.id = ?", userID).
		Scan(&row)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get user with teacher data").
			Uint("user_id", userID).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}
