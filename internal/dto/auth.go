package dto

// RegisterRequest carries the combined credential + profile payload for
// POST /api/auth/register. Validation mirrors the directory's field
// rules; joinyear is a custom validator bounding year_joined to
// (1900, current year].
type RegisterRequest struct {
	Email          string  `json:"email" binding:"required,email,max=255"`
	FirstName      string  `json:"first_name" binding:"required,alpha,min=2,max=50"`
	LastName       string  `json:"last_name" binding:"required,alpha,min=2,max=50"`
	Password       string  `json:"password" binding:"required,min=6,max=100"`
	UniversityName string  `json:"university_name" binding:"required,min=3,max=200"`
	Gender         string  `json:"gender" binding:"required,oneof=Male Female Other"`
	YearJoined     int     `json:"year_joined" binding:"required,joinyear"`
	Department     *string `json:"department" binding:"omitempty,max=100"`
	Qualification  *string `json:"qualification" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the outward user summary. It never carries the
// password hash.
type UserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterResponse struct {
	UserID    uint         `json:"user_id"`
	TeacherID uint         `json:"teacher_id"`
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
}

type LoginResponse struct {
	Token   string           `json:"token"`
	User    UserResponse     `json:"user"`
	Teacher *TeacherResponse `json:"teacher"`
}
