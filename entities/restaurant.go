package entities

import "gorm.io/gorm"

// Restaurant is the canonical restaurant row. Name and address together act
// as the lookup key when a receipt is turned into a review.
type Restaurant struct {
	ID         string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(100);not null;index:idx_restaurant_name_address" json:"name"`
	Category   string `gorm:"type:varchar(50)" json:"category"`
	Address    string `gorm:"type:varchar(255);index:idx_restaurant_name_address" json:"address"`
	LocationID string `gorm:"type:varchar(10)" json:"location_id"`
	Timestamp
}

func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

type Location struct {
	ID   string `gorm:"type:varchar(10);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}
