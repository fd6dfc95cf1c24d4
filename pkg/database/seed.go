package database

import (
	"errors"

	"github.com/campushub/teacher-service/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedEntry struct {
	user    model.User
	teacher model.Teacher
}

func strPtr(s string) *string { return &s }

func sampleEntries() []seedEntry {
	return []seedEntry{
		{
			user: model.User{
				Email:     "john.doe@university.edu",
				FirstName: "John",
				LastName:  "Doe",
				Password:  "password123",
				IsActive:  true,
			},
			teacher: model.Teacher{
				UniversityName:  "Stanford University",
				Gender:          "Male",
				YearJoined:      2018,
				Department:      strPtr("Computer Science"),
				Qualification:   strPtr("PhD in Computer Science"),
				ExperienceYears: 8,
				Specialization:  strPtr("Machine Learning, Data Structures"),
			},
		},
		{
			user: model.User{
				Email:     "jane.smith@university.edu",
				FirstName: "Jane",
				LastName:  "Smith",
				Password:  "password123",
				IsActive:  true,
			},
			teacher: model.Teacher{
				UniversityName:  "MIT",
				Gender:          "Female",
				YearJoined:      2015,
				Department:      strPtr("Mathematics"),
				Qualification:   strPtr("PhD in Applied Mathematics"),
				ExperienceYears: 11,
				Specialization:  strPtr("Number Theory, Cryptography"),
			},
		},
		{
			user: model.User{
				Email:     "amara.okafor@university.edu",
				FirstName: "Amara",
				LastName:  "Okafor",
				Password:  "password123",
				IsActive:  true,
			},
			teacher: model.Teacher{
				UniversityName: "University of Lagos",
				Gender:         "Female",
				YearJoined:     2021,
				Department:     strPtr("Physics"),
				Qualification:  strPtr("MSc in Physics"),
			},
		},
	}
}

// Seed creates the sample users and teacher profiles if they are not
// already present. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	for _, entry := range sampleEntries() {
		var existing model.User
		result := db.Where("email = ?", entry.user.Email).First(&existing)

		if result.Error == nil {
			continue // already seeded
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(entry.user.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := entry.user
		user.Password = string(hashed)
		teacher := entry.teacher

		// Same transaction boundary as registration: a user never
		// appears without its profile.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			teacher.UserID = user.ID
			return tx.Create(&teacher).Error
		})
		if err != nil {
			return err
		}
	}

	return nil
}
