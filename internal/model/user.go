package model

import "time"

// User is a credential record. The password column always holds a bcrypt
// hash; the plaintext never reaches this struct.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"column:email;unique;not null"`
	FirstName string    `gorm:"column:first_name;not null"`
	LastName  string    `gorm:"column:last_name;not null"`
	Password  string    `gorm:"column:password;not null"`
	IsActive  bool      `gorm:"column:is_active;default:true;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Teacher *Teacher `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "auth_user"
}
