package models

import "time"

type Post struct {
	ID             string `gorm:"type:varchar(10);primaryKey"`
	UserID         string `gorm:"type:varchar(10);not null;index"`
	Title          string `gorm:"type:varchar(250);not null"`
	Content        string `gorm:"type:text;not null"`
	AuthorNickname string `gorm:"type:varchar(255)"`
	Photo          string `gorm:"type:text"`
	QuantityLikes  int    `gorm:"not null;default:0"`
	Category       string `gorm:"type:varchar(100)"`
	Tags           string `gorm:"type:text"` // JSON-encoded tag list
	IsPublished    bool   `gorm:"not null;default:true"`
	IsDeleted      bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}
