package dto

import (
	"time"

	"github.com/campushub/teacher-service/internal/model"
)

type UpdateTeacherRequest struct {
	UniversityName  string  `json:"university_name" binding:"required,min=3,max=200"`
	Gender          string  `json:"gender" binding:"required,oneof=Male Female Other"`
	YearJoined      int     `json:"year_joined" binding:"required,joinyear"`
	Department      *string `json:"department" binding:"omitempty,max=100"`
	Qualification   *string `json:"qualification" binding:"omitempty,max=100"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,gte=0"`
	Specialization  *string `json:"specialization" binding:"omitempty,max=500"`
}

// TeacherResponse is a directory entry: profile columns plus the owning
// user's identity fields.
type TeacherResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	UniversityName  string    `json:"university_name"`
	Gender          string    `json:"gender"`
	YearJoined      int       `json:"year_joined"`
	Department      *string   `json:"department"`
	Qualification   *string   `json:"qualification"`
	ExperienceYears int       `json:"experience_years"`
	Specialization  *string   `json:"specialization"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewTeacherResponse maps a joined directory row to its response shape.
func NewTeacherResponse(row *model.TeacherWithUser) *TeacherResponse {
	if row == nil {
		return nil
	}
	return &TeacherResponse{
		ID:              row.ID,
		UserID:          row.UserID,
		UniversityName:  row.UniversityName,
		Gender:          row.Gender,
		YearJoined:      row.YearJoined,
		Department:      row.Department,
		Qualification:   row.Qualification,
		ExperienceYears: row.ExperienceYears,
		Specialization:  row.Specialization,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Email:           row.Email,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// NewTeacherResponseList maps a slice of joined rows.
func NewTeacherResponseList(rows []model.TeacherWithUser) []TeacherResponse {
	result := make([]TeacherResponse, 0, len(rows))
	for i := range rows {
		result = append(result, *NewTeacherResponse(&rows[i]))
	}
	return result
}

// ProfileResponse is the /api/profile row: user identity left-joined
// with the academic columns, password omitted.
type ProfileResponse struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	IsActive       bool      `json:"is_active"`
	UniversityName *string   `json:"university_name"`
	Gender         *string   `json:"gender"`
	YearJoined     *int      `json:"year_joined"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewProfileResponse maps the joined profile row.
func NewProfileResponse(row *model.UserWithTeacher) *ProfileResponse {
	if row == nil {
		return nil
	}
	return &ProfileResponse{
		ID:             row.ID,
		Email:          row.Email,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		IsActive:       row.IsActive,
		UniversityName: row.UniversityName,
		Gender:         row.Gender,
		YearJoined:     row.YearJoined,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
