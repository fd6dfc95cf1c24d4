package database

import (
	"github.com/campushub/teacher-service/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models. Order matters:
// teachers carries the user_id foreign key.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Teacher{},
	)
}
