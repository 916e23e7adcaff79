package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:120;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:254;not null"`
	Password  string    `json:"-" gorm:"column:password_hash;not null"`
	Language  string    `json:"language" gorm:"size:50;not null;default:''"`
	Age       int       `json:"age" gorm:"not null;default:0"`
	Platform  string    `json:"platform" gorm:"size:80;not null;default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates the UUID when the caller did not set one.
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
