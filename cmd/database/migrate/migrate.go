package migration

import (
	"Yoriview-Backend/entities"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"location", &entities.Location{}},
		{"restaurant", &entities.Restaurant{}},
		{"receipt", &entities.Receipt{}},
		{"receipt item", &entities.ReceiptItem{}},
		{"review style", &entities.ReviewStyle{}},
		{"review", &entities.Review{}},
		{"favorite", &entities.Favorite{}},
		{"visit log", &entities.VisitLog{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
