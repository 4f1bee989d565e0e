package entities

import "gorm.io/gorm"

// Review references its receipt, restaurant, style and location by id only.
type Review struct {
	ID           string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID       string  `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ReceiptID    string  `gorm:"type:varchar(36)" json:"receipt_id"`
	StyleID      string  `gorm:"type:varchar(20)" json:"style_id"`
	RestaurantID string  `gorm:"type:varchar(36);index" json:"restaurant_id"`
	LocationID   string  `gorm:"type:varchar(10)" json:"location_id"`
	Content      string  `gorm:"type:text;not null" json:"content"`
	Rating       float64 `gorm:"type:decimal(2,1);not null" json:"rating"`
	Timestamp
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

type ReviewStyle struct {
	ID          string `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(50);not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
}
