package visit

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"strings"
	"time"
)

type (
	VisitService interface {
		RecordVisit(ctx context.Context, userID string, restaurantID string) (domain.VisitResponse, error)
		GetMyVisits(ctx context.Context, userID string) ([]domain.VisitResponse, error)
		CountMyVisits(ctx context.Context, userID string, restaurantID string) (domain.VisitCountResponse, error)
	}

	visitService struct {
		visitRepository VisitRepository
		now             func() time.Time
	}
)

func NewVisitService(visitRepository VisitRepository) VisitService {
	return &visitService{
		visitRepository: visitRepository,
		now:             time.Now,
	}
}

func (s *visitService) RecordVisit(ctx context.Context, userID string, restaurantID string) (domain.VisitResponse, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return domain.VisitResponse{}, domain.ErrEmptyRestaurantID
	}

	visit := &entities.VisitLog{
		UserID:       userID,
		RestaurantID: restaurantID,
		VisitedAt:    s.now(),
	}
	if err := s.visitRepository.CreateVisit(ctx, visit); err != nil {
		return domain.VisitResponse{}, err
	}
	return toVisitResponse(visit), nil
}

func (s *visitService) GetMyVisits(ctx context.Context, userID string) ([]domain.VisitResponse, error) {
	visits, err := s.visitRepository.GetVisitsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.VisitResponse, 0, len(visits))
	for _, v := range visits {
		res = append(res, toVisitResponse(v))
	}
	return res, nil
}

func (s *visitService) CountMyVisits(ctx context.Context, userID string, restaurantID string) (domain.VisitCountResponse, error) {
	count, err := s.visitRepository.CountVisits(ctx, userID, restaurantID)
	if err != nil {
		return domain.VisitCountResponse{}, err
	}
	return domain.VisitCountResponse{RestaurantID: restaurantID, Count: count}, nil
}

func toVisitResponse(v *entities.VisitLog) domain.VisitResponse {
	return domain.VisitResponse{
		ID:           v.ID,
		RestaurantID: v.RestaurantID,
		VisitedAt:    v.VisitedAt,
	}
}
