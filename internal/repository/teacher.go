package repository

import (
	"context"
	"time"

	"github.com/campushub/teacher-service/internal/model"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"gorm.io/gorm"
)

const teacherWithUserSelect = "teachers.id, teachers.user_id, teachers.university_name, teachers.gender, teachers.year_joined, teachers.department, teachers.qualification, teachers.experience_years, teachers.specialization, teachers.created_at, teachers.updated_at, auth_user.first_name, auth_user.last_name, auth_user.email"

type TeacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

func (r *TeacherRepository) GetByID(ctx context.Context, id uint) (*model.Teacher, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetByID")

	var teacher model.Teacher
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&teacher)
	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get teacher by ID").
			Uint("teacher_id", id).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &teacher, nil
}

func (r *TeacherRepository) GetByUserID(ctx context.Context, userID uint) (*model.Teacher, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetByUserID")

	var teacher model.Teacher
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&teacher)
	if result.Error != nil {
		return nil, result.Error
	}

	return &teacher, nil
}

// GetAllWithUser lists every profile joined with its user identity,
// newest first.
func (r *TeacherRepository) GetAllWithUser(ctx context.Context) ([]model.TeacherWithUser, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetAllWithUser")

	start := time.Now()
	var rows []model.TeacherWithUser
	result := r.db.WithContext(ctx).
		Table("teachers").
		Select(teacherWithUserSelect).
		Joins("JOIN auth_user ON auth_user.id = teachers.user_id").
		Order("teachers.created_at DESC").
		Scan(&rows)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to list teachers").
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	logger.DebugWithContext(ctx, "Teachers listed").
		Int("count", len(rows)).
		Duration(time.Since(start)).
		Log()

	return rows, nil
}

// GetWithUser returns one joined directory row by teacher ID.
func (r *TeacherRepository) GetWithUser(ctx context.Context, teacherID uint) (*model.TeacherWithUser, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "GetWithUser")

	var row model.TeacherWithUser
	result := r.db.WithContext(ctx).
		Table("teachers").
		Select(teacherWithUserSelect).
		Joins("JOIN auth_user ON auth_user.id = teachers.user_id").
		Where("teachers.id = ?", teacherID).
		Scan(&row)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to get teacher with user data").
			Uint("teacher_id", teacherID).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}

// Search matches a case-insensitive substring against name, email,
// university and department, newest first.
func (r *TeacherRepository) Search(ctx context.Context, term string) ([]model.TeacherWithUser, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "Search")

	start := time.Now()
	pattern := "%" + term + "%"
	var rows []model.TeacherWithUser
	result := r.db.WithContext(ctx).
		Table("teachers").
		Select(teacherWithUserSelect).
		Joins("JOIN auth_user ON auth_user.id = teachers.user_id").
		Where(
			"auth_user.first_name ILIKE ? OR auth_user.last_name ILIKE ? OR auth_user.email ILIKE ? OR teachers.university_name ILIKE ? OR teachers.department ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Order("teachers.created_at DESC").
		Scan(&rows)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Teacher search failed").
			String("search_term", term).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	logger.DebugWithContext(ctx, "Teacher search completed").
		String("search_term", term).
		Int("count", len(rows)).
		Duration(time.Since(start)).
		Log()

	return rows, nil
}

// Update overwrites the named profile fields for one teacher.
func (r *TeacherRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	ctx = ctxutil.WithModuleFunction(ctx, "repository", "Update")

	start := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Teacher{}).
		Where("id = ?", id).
		Updates(fields)

	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update teacher").
			Uint("teacher_id", id).
			Duration(time.Since(start)).
			Err(result.Error).
			Log()
		return result.Error
	}

	if result.RowsAffected == 0 {
		logger.WarnWithContext(ctx, "No teacher found to update").
			Uint("teacher_id", id).
			Log()
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Teacher updated").
		Uint("teacher_id", id).
		Int64("rows_affected", result.RowsAffected).
		Duration(time.Since(start)).
		Log()

	return nil
}
