package review

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ReviewStyleRepository interface {
		CreateReviewStyle(ctx context.Context, style *entities.ReviewStyle) error
		GetReviewStyles(ctx context.Context) ([]*entities.ReviewStyle, error)
		ExistsReviewStyle(ctx context.Context, id string) (bool, error)
	}

	reviewStyleRepository struct {
		db *gorm.DB
	}
)

func NewReviewStyleRepository(db *gorm.DB) ReviewStyleRepository {
	return &reviewStyleRepository{db: db}
}

func (r *reviewStyleRepository) CreateReviewStyle(ctx context.Context, style *entities.ReviewStyle) error {
	return r.db.WithContext(ctx).Create(style).Error
}

func (r *reviewStyleRepository) GetReviewStyles(ctx context.Context) ([]*entities.ReviewStyle, error) {
	var styles []*entities.ReviewStyle
	if err := r.db.WithContext(ctx).Order("id asc").Find(&styles).Error; err != nil {
		return nil, err
	}
	return styles, nil
}

func (r *reviewStyleRepository) ExistsReviewStyle(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ReviewStyle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
