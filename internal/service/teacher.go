package service

import (
	"context"
	"errors"
	"strings"

	"github.com/campushub/teacher-service/internal/dto"
	apperrors "github.com/campushub/teacher-service/internal/errors"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"gorm.io/gorm"
)

// TeacherService is the profile directory: reads over the joined
// teacher+user view, plus update and the deactivation path.
type TeacherService struct {
	teachers ProfileStore
	users    CredentialStore
	cache    *DirectoryCache
}

func NewTeacherService(teachers ProfileStore, users CredentialStore, cache *DirectoryCache) *TeacherService {
	return &TeacherService{
		teachers: teachers,
		users:    users,
		cache:    cache,
	}
}

// List returns every directory entry, newest first.
func (s *TeacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "List")

	if cached := s.cache.GetList(ctx); cached != nil {
		logger.DebugWithContext(ctx, "Directory list served from cache").
			Int("count", len(cached)).
			Log()
		return cached, nil
	}

	rows, err := s.teachers.GetAllWithUser(ctx)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to list teachers").
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	result := dto.NewTeacherResponseList(rows)
	s.cache.SetList(ctx, result)

	return result, nil
}

// Get returns one directory entry by teacher ID.
func (s *TeacherService) Get(ctx context.Context, id uint) (*dto.TeacherResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Get")

	if cached := s.cache.GetTeacher(ctx, id); cached != nil {
		return cached, nil
	}

	row, err := s.teachers.GetWithUser(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Teacher not found").
				Uint("teacher_id", id).
				Log()
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to get teacher").
			Uint("teacher_id", id).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	result := dto.NewTeacherResponse(row)
	s.cache.SetTeacher(ctx, result)

	return result, nil
}

// Search matches a case-insensitive substring against the identity and
// academic fields. An empty term is a validation failure, not an empty
// result.
func (s *TeacherService) Search(ctx context.Context, term string) ([]dto.TeacherResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Search")

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperrors.ErrInvalidInput
	}

	rows, err := s.teachers.Search(ctx, term)
	if err != nil {
		logger.ErrorWithContext(ctx, "Teacher search failed").
			String("search_term", term).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewTeacherResponseList(rows), nil
}

// Update overwrites the profile fields of one teacher and returns the
// refreshed joined record.
func (s *TeacherService) Update(ctx context.Context, id uint, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Update")

	logger.InfoWithContext(ctx, "Updating teacher").
		Uint("teacher_id", id).
		Log()

	if _, err := s.teachers.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	experienceYears := 0
	if req.ExperienceYears != nil {
		experienceYears = *req.ExperienceYears
	}

	fields := map[string]interface{}{
		"university_name":  strings.TrimSpace(req.UniversityName),
		"gender":           req.Gender,
		"year_joined":      req.YearJoined,
		"department":       req.Department,
		"qualification":    req.Qualification,
		"experience_years": experienceYears,
		"specialization":   req.Specialization,
	}

	if err := s.teachers.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to update teacher").
			Uint("teacher_id", id).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	row, err := s.teachers.GetWithUser(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewTeacherResponse(row), nil
}

// Deactivate flips the owning user's is_active flag. Both rows stay in
// place; the user just cannot log in anymore.
func (s *TeacherService) Deactivate(ctx context.Context, id uint) error {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Deactivate")

	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Teacher not found for deactivation").
				Uint("teacher_id", id).
				Log()
			return apperrors.ErrTeacherNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.users.Deactivate(ctx, teacher.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to deactivate owning user").
			Uint("teacher_id", id).
			Uint("user_id", teacher.UserID).
			Err(err).
			Log()
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Teacher deactivated").
		Uint("teacher_id", id).
		Uint("user_id", teacher.UserID).
		Log()

	return nil
}
