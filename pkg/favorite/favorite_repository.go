package favorite

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		RemoveFavorite(ctx context.Context, userID string, restaurantID string) error
		ExistsFavorite(ctx context.Context, userID string, restaurantID string) (bool, error)
		GetFavoritesByUser(ctx context.Context, userID string) ([]*FavoriteRestaurant, error)
	}

	// FavoriteRestaurant is a favorite joined with its restaurant.
	FavoriteRestaurant struct {
		ID                 string
		RestaurantID       string
		CreatedAt          time.Time
		RestaurantName     *string
		RestaurantCategory *string
		RestaurantAddress  *string
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID string, restaurantID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entities.Favorite{}).Error
}

func (r *favoriteRepository) ExistsFavorite(ctx context.Context, userID string, restaurantID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) GetFavoritesByUser(ctx context.Context, userID string) ([]*FavoriteRestaurant, error) {
	var favorites []*FavoriteRestaurant
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select(`favorites.id, favorites.restaurant_id, favorites.created_at,
			restaurants.name AS restaurant_name,
			restaurants.category AS restaurant_category,
			restaurants.address AS restaurant_address`).
		Joins("LEFT JOIN restaurants ON restaurants.id = favorites.restaurant_id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at desc").
		Scan(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
