package entities

import "gorm.io/gorm"

type User struct {
	ID               string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email            string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash     string `gorm:"type:varchar(255);not null" json:"-"`
	Nickname         string `gorm:"type:varchar(50);not null" json:"nickname"`
	DefaultStyleID   string `gorm:"type:varchar(20)" json:"default_style_id"`
	LocationEnabled  bool   `json:"location_enabled"`
	ReviewVisibility bool   `json:"review_visibility"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}
