package entities

import (
	"gorm.io/gorm"
	"time"
)

type Receipt struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID         string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	RestaurantID   string     `gorm:"type:varchar(36);index" json:"restaurant_id"`
	RestaurantName string     `gorm:"type:varchar(100)" json:"restaurant_name"`
	OriginalImg    string     `gorm:"type:text" json:"original_img"`
	ReceiptDate    *time.Time `gorm:"type:date" json:"receipt_date"`
	ReceiptAddress string     `gorm:"type:varchar(255)" json:"receipt_address"`
	UploadedAt     time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	return nil
}

type ReceiptItem struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	ReceiptID string `gorm:"type:varchar(36);not null;index" json:"receipt_id"`
	FoodName  string `gorm:"type:varchar(100);not null" json:"food_name"`
	Price     int    `json:"price"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	if i.Quantity <= 0 {
		i.Quantity = 1
	}
	return nil
}
