package review

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"errors"
	"gorm.io/gorm"
	"strings"
)

type (
	ReviewStyleService interface {
		CreateReviewStyle(ctx context.Context, req domain.CreateReviewStyleRequest) (domain.ReviewStyleResponse, error)
		GetReviewStyles(ctx context.Context) ([]domain.ReviewStyleResponse, error)
	}

	reviewStyleService struct {
		reviewStyleRepository ReviewStyleRepository
	}
)

func NewReviewStyleService(reviewStyleRepository ReviewStyleRepository) ReviewStyleService {
	return &reviewStyleService{reviewStyleRepository: reviewStyleRepository}
}

func (s *reviewStyleService) CreateReviewStyle(ctx context.Context, req domain.CreateReviewStyleRequest) (domain.ReviewStyleResponse, error) {
	style := &entities.ReviewStyle{
		ID:          strings.ToUpper(strings.TrimSpace(req.ID)),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if style.ID == "" || style.Name == "" {
		return domain.ReviewStyleResponse{}, domain.ErrEmptyReviewStyleField
	}

	exists, err := s.reviewStyleRepository.ExistsReviewStyle(ctx, style.ID)
	if err != nil {
		return domain.ReviewStyleResponse{}, err
	}
	if exists {
		return domain.ReviewStyleResponse{}, domain.ErrReviewStyleExists
	}

	if err := s.reviewStyleRepository.CreateReviewStyle(ctx, style); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ReviewStyleResponse{}, domain.ErrReviewStyleExists
		}
		return domain.ReviewStyleResponse{}, err
	}
	return toReviewStyleResponse(style), nil
}

func (s *reviewStyleService) GetReviewStyles(ctx context.Context) ([]domain.ReviewStyleResponse, error) {
	styles, err := s.reviewStyleRepository.GetReviewStyles(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReviewStyleResponse, 0, len(styles))
	for _, style := range styles {
		res = append(res, toReviewStyleResponse(style))
	}
	return res, nil
}

func toReviewStyleResponse(style *entities.ReviewStyle) domain.ReviewStyleResponse {
	return domain.ReviewStyleResponse{
		ID:          style.ID,
		Name:        style.Name,
		Description: style.Description,
	}
}
