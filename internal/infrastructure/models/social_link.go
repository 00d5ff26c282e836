package models

import "time"

type SocialLink struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	UserID       string `gorm:"type:varchar(10);not null;index"`
	Network      string `gorm:"type:varchar(50);not null"`
	URL          string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"not null;default:0"`
	CreatedAt    time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (SocialLink) TableName() string {
	return "social_links"
}
