package restaurant

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"strings"
)

type (
	RestaurantService interface {
		CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.RestaurantResponse, error)
		GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error)
		GetLocations(ctx context.Context) ([]domain.LocationResponse, error)
		GetVisitedRestaurants(ctx context.Context, userID string) ([]domain.RestaurantResponse, error)
	}

	restaurantService struct {
		restaurantRepository RestaurantRepository
	}
)

func NewRestaurantService(restaurantRepository RestaurantRepository) RestaurantService {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (domain.RestaurantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.RestaurantResponse{}, domain.ErrEmptyRestaurantName
	}

	restaurant := &entities.Restaurant{
		Name:       name,
		Category:   strings.TrimSpace(req.Category),
		Address:    strings.TrimSpace(req.Address),
		LocationID: req.LocationID,
	}
	if err := s.restaurantRepository.CreateRestaurant(ctx, restaurant); err != nil {
		return domain.RestaurantResponse{}, err
	}
	return ToRestaurantResponse(restaurant), nil
}

func (s *restaurantService) GetRestaurants(ctx context.Context) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return toRestaurantResponses(restaurants), nil
}

func (s *restaurantService) GetLocations(ctx context.Context) ([]domain.LocationResponse, error) {
	locations, err := s.restaurantRepository.GetLocations(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.LocationResponse, 0, len(locations))
	for _, l := range locations {
		res = append(res, domain.LocationResponse{ID: l.ID, Name: l.Name})
	}
	return res, nil
}

// GetVisitedRestaurants lists the distinct restaurants the user has reviewed.
func (s *restaurantService) GetVisitedRestaurants(ctx context.Context, userID string) ([]domain.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepository.GetReviewedRestaurants(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toRestaurantResponses(restaurants), nil
}

func ToRestaurantResponse(r *entities.Restaurant) domain.RestaurantResponse {
	return domain.RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Address:    r.Address,
		LocationID: r.LocationID,
	}
}

func toRestaurantResponses(restaurants []*entities.Restaurant) []domain.RestaurantResponse {
	res := make([]domain.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		res = append(res, ToRestaurantResponse(r))
	}
	return res
}
