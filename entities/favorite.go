package entities

import "gorm.io/gorm"

type Favorite struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       string `gorm:"type:varchar(36);not null;uniqueIndex:idx_favorite_user_restaurant" json:"user_id"`
	RestaurantID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_favorite_user_restaurant" json:"restaurant_id"`
	Timestamp
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}
