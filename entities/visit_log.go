package entities

import (
	"gorm.io/gorm"
	"time"
)

type VisitLog struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RestaurantID string    `gorm:"type:varchar(36);not null;index" json:"restaurant_id"`
	VisitedAt    time.Time `gorm:"not null" json:"visited_at"`
}

func (v *VisitLog) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	if v.VisitedAt.IsZero() {
		v.VisitedAt = time.Now()
	}
	return nil
}
