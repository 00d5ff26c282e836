package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"type:varchar(10);primaryKey"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null"`
	FirstName    string `gorm:"type:varchar(100);not null"`
	LastName     string `gorm:"type:varchar(100);not null"`
	Photo        string `gorm:"type:text"`
	Bio          string `gorm:"type:text"`
	Banner       string `gorm:"type:text"`
	PasswordHash string `gorm:"type:text;not null"`
	Active       bool   `gorm:"not null;default:false"`
	IsFirstLogin bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
