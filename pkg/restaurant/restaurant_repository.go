package restaurant

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	RestaurantRepository interface {
		CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error
		GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error)
		GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error)
		GetRestaurantsByIDs(ctx context.Context, ids []string) ([]*entities.Restaurant, error)
		FindByNameAndAddress(ctx context.Context, name string, address string) (*entities.Restaurant, error)
		GetReviewedRestaurants(ctx context.Context, userID string) ([]*entities.Restaurant, error)
		GetLocations(ctx context.Context) ([]*entities.Location, error)
	}

	restaurantRepository struct {
		db *gorm.DB
	}
)

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entities.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) GetRestaurants(ctx context.Context) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetRestaurantsByIDs(ctx context.Context, ids []string) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	if len(ids) == 0 {
		return restaurants, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindByNameAndAddress matches both fields exactly. The oldest row wins if
// concurrent submissions ever created duplicates.
func (r *restaurantRepository) FindByNameAndAddress(ctx context.Context, name string, address string) (*entities.Restaurant, error) {
	var restaurant entities.Restaurant
	err := r.db.WithContext(ctx).
		Where("name = ? AND address = ?", name, address).
		Order("created_at asc").
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetReviewedRestaurants(ctx context.Context, userID string) ([]*entities.Restaurant, error) {
	var restaurants []*entities.Restaurant
	reviewed := r.db.Model(&entities.Review{}).Select("restaurant_id").Where("user_id = ?", userID)
	if err := r.db.WithContext(ctx).Where("id IN (?)", reviewed).Order("name asc").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) GetLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("id asc").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
