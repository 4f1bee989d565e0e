package receipt

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"context"
	"strings"
	"time"
)

type (
	ReceiptService interface {
		SaveReceipt(ctx context.Context, userID string, req domain.SaveReceiptRequest) (domain.ReceiptResponse, error)
		GetMyReceipts(ctx context.Context, userID string) ([]domain.ReceiptResponse, error)
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		images            *ImageStore
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, images *ImageStore) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		images:            images,
	}
}

func (s *receiptService) SaveReceipt(ctx context.Context, userID string, req domain.SaveReceiptRequest) (domain.ReceiptResponse, error) {
	receiptDate, err := ParseReceiptDate(req.ReceiptDate)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}
	items, err := BuildItems(req.Items)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}

	image, err := s.images.Persist(ctx, req.OriginalImg, nil)
	if err != nil {
		return domain.ReceiptResponse{}, err
	}

	receipt := &entities.Receipt{
		UserID:         userID,
		RestaurantID:   req.RestaurantID,
		RestaurantName: strings.TrimSpace(req.RestaurantName),
		OriginalImg:    image.Value,
		ReceiptDate:    receiptDate,
		ReceiptAddress: strings.TrimSpace(req.ReceiptAddress),
	}
	if err := s.receiptRepository.CreateReceiptWithItems(ctx, receipt, items); err != nil {
		s.images.Discard(ctx, image)
		return domain.ReceiptResponse{}, err
	}
	return ToReceiptResponse(receipt, items), nil
}

func (s *receiptService) GetMyReceipts(ctx context.Context, userID string) ([]domain.ReceiptResponse, error) {
	receipts, err := s.receiptRepository.GetReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(receipts))
	for _, r := range receipts {
		ids = append(ids, r.ID)
	}
	items, err := s.receiptRepository.GetItemsByReceiptIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byReceipt := make(map[string][]*entities.ReceiptItem, len(receipts))
	for _, item := range items {
		byReceipt[item.ReceiptID] = append(byReceipt[item.ReceiptID], item)
	}

	res := make([]domain.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		res = append(res, ToReceiptResponse(r, byReceipt[r.ID]))
	}
	return res, nil
}

// ParseReceiptDate returns nil for an empty string.
func ParseReceiptDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.ReceiptDateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidReceiptDate
	}
	return &date, nil
}

// BuildItems turns request line items into rows. A missing quantity becomes 1.
func BuildItems(reqs []domain.ReceiptItemRequest) ([]*entities.ReceiptItem, error) {
	items := make([]*entities.ReceiptItem, 0, len(reqs))
	for _, req := range reqs {
		if req.Price < 0 {
			return nil, domain.ErrInvalidItemPrice
		}
		quantity := req.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, &entities.ReceiptItem{
			FoodName: strings.TrimSpace(req.Name),
			Price:    req.Price,
			Quantity: quantity,
		})
	}
	return items, nil
}

func ToReceiptResponse(r *entities.Receipt, items []*entities.ReceiptItem) domain.ReceiptResponse {
	res := domain.ReceiptResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		RestaurantID:   r.RestaurantID,
		RestaurantName: r.RestaurantName,
		ReceiptAddress: r.ReceiptAddress,
		ReceiptDate:    r.ReceiptDate,
		OriginalImg:    r.OriginalImg,
		UploadedAt:     r.UploadedAt,
		Items:          make([]domain.ReceiptItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.Items = append(res.Items, domain.ReceiptItemResponse{
			ID:       item.ID,
			Name:     item.FoodName,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return res
}
