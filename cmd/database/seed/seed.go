package seed

import (
	"Yoriview-Backend/entities"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Locations = []entities.Location{
	{ID: "GN", Name: "Gangnam-gu"},
	{ID: "SC", Name: "Seocho-gu"},
	{ID: "SP", Name: "Songpa-gu"},
	{ID: "MP", Name: "Mapo-gu"},
	{ID: "YD", Name: "Yeongdeungpo-gu"},
	{ID: "YS", Name: "Yongsan-gu"},
	{ID: "JG", Name: "Jung-gu"},
	{ID: "JR", Name: "Jongno-gu"},
	{ID: "SD", Name: "Seongdong-gu"},
	{ID: "GW", Name: "Gwangjin-gu"},
}

var ReviewStyles = []entities.ReviewStyle{
	{ID: "FRIENDLY", Name: "Friendly", Description: "Casual tone, like telling a friend"},
	{ID: "EXPERT", Name: "Expert", Description: "Detailed notes on taste, texture and value"},
	{ID: "SHORT", Name: "Short", Description: "One or two lines"},
	{ID: "EMOTIONAL", Name: "Emotional", Description: "Focused on mood and memories"},
}

// Seed inserts the reference rows, leaving existing ids untouched.
func Seed(db *gorm.DB) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Locations).Error; err != nil {
		return fmt.Errorf("error seeding locations: %w", err)
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ReviewStyles).Error; err != nil {
		return fmt.Errorf("error seeding review styles: %w", err)
	}

	log.Infof("Seeded %d locations and %d review styles", len(Locations), len(ReviewStyles))
	return nil
}
