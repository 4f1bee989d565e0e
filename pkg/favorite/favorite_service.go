package favorite

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
	"strings"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, userID string, restaurantID string) (domain.FavoriteStatusResponse, error)
		RemoveFavorite(ctx context.Context, userID string, restaurantID string) error
		GetMyFavorites(ctx context.Context, userID string) ([]domain.FavoriteResponse, error)
		IsFavorite(ctx context.Context, userID string, restaurantID string) (domain.FavoriteStatusResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
	}
)

// Every lookup is scoped by the caller's id, so a favorite is only ever
// visible to and removable by the user who created it.
func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepository: favoriteRepository}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID string, restaurantID string) (domain.FavoriteStatusResponse, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return domain.FavoriteStatusResponse{}, domain.ErrEmptyRestaurantID
	}

	exists, err := s.favoriteRepository.ExistsFavorite(ctx, userID, restaurantID)
	if err != nil {
		return domain.FavoriteStatusResponse{}, err
	}
	if exists {
		return domain.FavoriteStatusResponse{}, domain.ErrFavoriteAlreadyExists
	}

	err = s.favoriteRepository.AddFavorite(ctx, &entities.Favorite{UserID: userID, RestaurantID: restaurantID})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FavoriteStatusResponse{}, domain.ErrFavoriteAlreadyExists
		}
		return domain.FavoriteStatusResponse{}, err
	}
	return domain.FavoriteStatusResponse{RestaurantID: restaurantID, Favorited: true}, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID string, restaurantID string) error {
	return s.favoriteRepository.RemoveFavorite(ctx, userID, strings.TrimSpace(restaurantID))
}

func (s *favoriteService) GetMyFavorites(ctx context.Context, userID string) ([]domain.FavoriteResponse, error) {
	favorites, err := s.favoriteRepository.GetFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, domain.FavoriteResponse{
			ID:                 f.ID,
			RestaurantID:       f.RestaurantID,
			RestaurantName:     deref(f.RestaurantName),
			RestaurantCategory: deref(f.RestaurantCategory),
			RestaurantAddress:  deref(f.RestaurantAddress),
			CreatedAt:          f.CreatedAt,
		})
	}
	return res, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID string, restaurantID string) (domain.FavoriteStatusResponse, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	exists, err := s.favoriteRepository.ExistsFavorite(ctx, userID, restaurantID)
	if err != nil {
		return domain.FavoriteStatusResponse{}, err
	}
	return domain.FavoriteStatusResponse{RestaurantID: restaurantID, Favorited: exists}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
