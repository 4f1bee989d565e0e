package visit

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	VisitRepository interface {
		CreateVisit(ctx context.Context, visit *entities.VisitLog) error
		GetVisitsByUser(ctx context.Context, userID string) ([]*entities.VisitLog, error)
		CountVisits(ctx context.Context, userID string, restaurantID string) (int64, error)
	}

	visitRepository struct {
		db *gorm.DB
	}
)

func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) CreateVisit(ctx context.Context, visit *entities.VisitLog) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// GetVisitsByUser returns visits in the order they were recorded.
func (r *visitRepository) GetVisitsByUser(ctx context.Context, userID string) ([]*entities.VisitLog, error) {
	var visits []*entities.VisitLog
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("visited_at asc").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) CountVisits(ctx context.Context, userID string, restaurantID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.VisitLog{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
