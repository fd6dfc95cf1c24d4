package model

import "time"

// Teacher is the academic profile owned 1:1 by a User. The unique index
// on user_id is what guarantees at most one profile per user.
type Teacher struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"column:user_id;uniqueIndex;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UniversityName  string    `gorm:"column:university_name;size:200;not null;index"`
	Gender          string    `gorm:"column:gender;size:10;not null"`
	YearJoined      int       `gorm:"column:year_joined;not null"`
	Department      *string   `gorm:"column:department;size:100"`
	Qualification   *string   `gorm:"column:qualification;size:100"`
	ExperienceYears int       `gorm:"column:experience_years;default:0"`
	Specialization  *string   `gorm:"column:specialization;type:text"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

func (Teacher) TableName() string {
	return "teachers"
}

// TeacherWithUser is the directory row: a teacher profile joined with
// the owning user's identity columns.
type TeacherWithUser struct {
	ID              uint      `gorm:"column:id" json:"id"`
	UserID          uint      `gorm:"column:user_id" json:"user_id"`
	UniversityName  string    `gorm:"column:university_name" json:"university_name"`
	Gender          string    `gorm:"column:gender" json:"gender"`
	YearJoined      int       `gorm:"column:year_joined" json:"year_joined"`
	Department      *string   `gorm:"column:department" json:"department"`
	Qualification   *string   `gorm:"column:qualification" json:"qualification"`
	ExperienceYears int       `gorm:"column:experience_years" json:"experience_years"`
	Specialization  *string   `gorm:"column:specialization" json:"specialization"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
	FirstName       string    `gorm:"column:first_name" json:"first_name"`
	LastName        string    `gorm:"column:last_name" json:"last_name"`
	Email           string    `gorm:"column:email" json:"email"`
}

// UserWithTeacher is the profile row: a user joined (left) with the
// academic columns of their teacher record, password excluded.
type UserWithTeacher struct {
	ID             uint      `gorm:"column:id" json:"id"`
	Email          string    `gorm:"column:email" json:"email"`
	FirstName      string    `gorm:"column:first_name" json:"first_name"`
	LastName       string    `gorm:"column:last_name" json:"last_name"`
	IsActive       bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
	UniversityName *string   `gorm:"column:university_name" json:"university_name"`
	Gender         *string   `gorm:"column:gender" json:"gender"`
	YearJoined     *int      `gorm:"column:year_joined" json:"year_joined"`
}
