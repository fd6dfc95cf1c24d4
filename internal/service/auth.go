package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campushub/teacher-service/internal/dto"
	apperrors "github.com/campushub/teacher-service/internal/errors"
	"github.com/campushub/teacher-service/internal/model"
	ctxutil "github.com/campushub/teacher-service/pkg/context"
	"github.com/campushub/teacher-service/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login and the profile read. Password
// hashing happens here, before anything reaches a store.
type AuthService struct {
	users      CredentialStore
	teachers   ProfileStore
	jwtService *JWTService
	cache      *DirectoryCache
}

func NewAuthService(users CredentialStore, teachers ProfileStore, jwtService *JWTService, cache *DirectoryCache) *AuthService {
	return &AuthService{
		users:      users,
		teachers:   teachers,
		jwtService: jwtService,
		cache:      cache,
	}
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

func (s *AuthService) checkPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// Register creates the user and its teacher profile as one atomic unit
// and returns a freshly issued token. Field-shape validation has
// already happened at the binding layer; the duplicate-email rule is
// enforced here and backed by the unique constraint for concurrent
// registrations.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Register")

	email := strings.ToLower(strings.TrimSpace(req.Email))

	logger.InfoWithContext(ctx, "Registration attempt").
		String("email", email).
		Log()

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		logger.WarnWithContext(ctx, "Registration rejected: email taken").
			String("email", email).
			Log()
		return nil, apperrors.ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to hash password").
			String("email", email).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	user := &model.User{
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Password:  hashedPassword,
		IsActive:  true,
	}

	teacher := &model.Teacher{
		UniversityName: strings.TrimSpace(req.UniversityName),
		Gender:         req.Gender,
		YearJoined:     req.YearJoined,
		Department:     req.Department,
		Qualification:  req.Qualification,
	}

	if err := s.users.CreateWithProfile(ctx, user, teacher); err != nil {
		// The loser of a concurrent registration on the same email
		// hits the unique constraint, not the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnWithContext(ctx, "Registration lost duplicate-email race").
				String("email", email).
				Log()
			return nil, apperrors.ErrEmailExists
		}
		logger.ErrorWithContext(ctx, "Failed to persist registration").
			String("email", email).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to generate token after registration").
			Uint("user_id", user.ID).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	logger.InfoWithContext(ctx, "Registration successful").
		String("email", user.Email).
		Uint("user_id", user.ID).
		Uint("teacher_id", teacher.ID).
		Log()

	return &dto.RegisterResponse{
		UserID:    user.ID,
		TeacherID: teacher.ID,
		Token:     token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}, nil
}

// Login verifies credentials against the active-user set and issues a
// token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Login")

	email = strings.ToLower(strings.TrimSpace(email))

	logger.InfoWithContext(ctx, "Login attempt").
		String("email", email).
		Log()

	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.InfoWithContext(ctx, "Login failed: no active user for email").
				String("email", email).
				Log()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if !s.checkPassword(user.Password, password) {
		logger.WarnWithContext(ctx, "Login failed: password mismatch").
			String("email", email).
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to generate token").
			Uint("user_id", user.ID).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	// A user without a profile is legal; teacher stays null.
	var teacherResponse *dto.TeacherResponse
	teacher, err := s.teachers.GetByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
	} else {
		teacherResponse = &dto.TeacherResponse{
			ID:              teacher.ID,
			UserID:          teacher.UserID,
			UniversityName:  teacher.UniversityName,
			Gender:          teacher.Gender,
			YearJoined:      teacher.YearJoined,
			Department:      teacher.Department,
			Qualification:   teacher.Qualification,
			ExperienceYears: teacher.ExperienceYears,
			Specialization:  teacher.Specialization,
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			Email:           user.Email,
			CreatedAt:       teacher.CreatedAt,
			UpdatedAt:       teacher.UpdatedAt,
		}
	}

	logger.InfoWithContext(ctx, "Login successful").
		String("email", user.Email).
		Uint("user_id", user.ID).
		Log()

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Teacher: teacherResponse,
	}, nil
}

// Profile returns the acting user's record joined with their academic
// columns, never including the password hash.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	ctx = ctxutil.WithModuleFunction(ctx, "service", "Profile")

	row, err := s.users.GetWithTeacher(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.ErrorWithContext(ctx, "Failed to load profile").
			Uint("user_id", userID).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return dto.NewProfileResponse(row), nil
}
