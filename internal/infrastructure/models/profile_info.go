package models

import "time"

type ProfileInfo struct {
	UserID     string  `gorm:"type:varchar(10);primaryKey"`
	Username   *string `gorm:"type:varchar(120);uniqueIndex"`
	Occupation string  `gorm:"type:varchar(120)"`
	Name       string  `gorm:"type:varchar(200);not null"`
	Email      string  `gorm:"type:varchar(150);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ProfileInfo) TableName() string {
	return "profile_info"
}
