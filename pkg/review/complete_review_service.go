package review

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/entities"
	"Yoriview-Backend/pkg/receipt"
	"Yoriview-Backend/pkg/restaurant"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"strings"
	"time"
)

type (
	CompleteReviewService interface {
		SubmitCompleteReview(ctx context.Context, userID string, req domain.CompleteReviewRequest) (domain.CompleteReviewResponse, error)
	}

	// ScanStore gives access to images staged by the OCR bridge.
	ScanStore interface {
		StagedImage(scanID string) ([]byte, error)
		RemoveScan(scanID string) error
	}

	completeReviewService struct {
		db     *gorm.DB
		images *receipt.ImageStore
		scans  ScanStore
	}

	completeReviewInput struct {
		rating      float64
		receiptDate *time.Time
		items       []*entities.ReceiptItem
		staged      []byte
	}
)

// NewCompleteReviewService accepts a nil ScanStore when no OCR staging is available.
func NewCompleteReviewService(db *gorm.DB, images *receipt.ImageStore, scans ScanStore) CompleteReviewService {
	return &completeReviewService{
		db:     db,
		images: images,
		scans:  scans,
	}
}

// SubmitCompleteReview stores restaurant, receipt, line items and review in
// one transaction. Input is fully validated before the first write.
func (s *completeReviewService) SubmitCompleteReview(ctx context.Context, userID string, req domain.CompleteReviewRequest) (domain.CompleteReviewResponse, error) {
	in, err := s.prepare(req)
	if err != nil {
		return domain.CompleteReviewResponse{}, err
	}

	image, err := s.images.Persist(ctx, req.OriginalImg, in.staged)
	if err != nil {
		return domain.CompleteReviewResponse{}, err
	}

	var (
		rest    *entities.Restaurant
		rec     *entities.Receipt
		created *entities.Review
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rest, err = findOrCreateRestaurant(ctx, restaurant.NewRestaurantRepository(tx), req)
		if err != nil {
			return err
		}

		receiptRepository := receipt.NewReceiptRepository(tx)
		rec = &entities.Receipt{
			UserID:         userID,
			RestaurantID:   rest.ID,
			RestaurantName: strings.TrimSpace(req.OcrRestaurantName),
			OriginalImg:    image.Value,
			ReceiptDate:    in.receiptDate,
			ReceiptAddress: strings.TrimSpace(req.OcrAddress),
		}
		if err := receiptRepository.CreateReceipt(ctx, rec); err != nil {
			return err
		}
		for _, item := range in.items {
			item.ReceiptID = rec.ID
		}
		if err := receiptRepository.CreateReceiptItems(ctx, in.items); err != nil {
			return err
		}

		locationID := req.LocationID
		if locationID == "" {
			locationID = rest.LocationID
		}
		created = &entities.Review{
			UserID:       userID,
			ReceiptID:    rec.ID,
			StyleID:      req.StyleID,
			RestaurantID: rest.ID,
			LocationID:   locationID,
			Content:      strings.TrimSpace(req.ReviewContent),
			Rating:       in.rating,
		}
		return NewReviewRepository(tx).CreateReview(ctx, created)
	})
	if err != nil {
		s.images.Discard(ctx, image)
		return domain.CompleteReviewResponse{}, err
	}

	s.cleanupScan(req.ScanID)

	return domain.CompleteReviewResponse{
		ReviewID:     created.ID,
		ReceiptID:    rec.ID,
		RestaurantID: rest.ID,
		Message:      domain.MessageSuccessCompleteReview,
		Success:      true,
	}, nil
}

func (s *completeReviewService) prepare(req domain.CompleteReviewRequest) (completeReviewInput, error) {
	var in completeReviewInput

	rating, err := ValidateReview(req.ReviewContent, req.Rating)
	if err != nil {
		return in, err
	}
	in.rating = rating

	if strings.TrimSpace(req.RestaurantName) == "" {
		return in, domain.ErrEmptyRestaurantName
	}

	if in.receiptDate, err = receipt.ParseReceiptDate(req.ReceiptDate); err != nil {
		return in, err
	}

	itemReqs := make([]domain.ReceiptItemRequest, 0, len(req.OcrMenuItems))
	for _, item := range req.OcrMenuItems {
		itemReqs = append(itemReqs, domain.ReceiptItemRequest{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	if in.items, err = receipt.BuildItems(itemReqs); err != nil {
		return in, err
	}

	if req.ScanID != "" && req.OriginalImg == "" && s.scans != nil {
		if in.staged, err = s.scans.StagedImage(req.ScanID); err != nil {
			return in, err
		}
	}
	return in, nil
}

func findOrCreateRestaurant(ctx context.Context, repo restaurant.RestaurantRepository, req domain.CompleteReviewRequest) (*entities.Restaurant, error) {
	name := strings.TrimSpace(req.RestaurantName)
	address := strings.TrimSpace(req.RestaurantAddress)

	existing, err := repo.FindByNameAndAddress(ctx, name, address)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &entities.Restaurant{
		Name:       name,
		Category:   strings.TrimSpace(req.RestaurantCategory),
		Address:    address,
		LocationID: req.LocationID,
	}
	if err := repo.CreateRestaurant(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// cleanupScan runs after commit; a failure only leaves a stale directory behind.
func (s *completeReviewService) cleanupScan(scanID string) {
	if scanID == "" || s.scans == nil {
		return
	}
	if err := s.scans.RemoveScan(scanID); err != nil {
		log.Warnf("failed to clean up ocr scan %s: %v", scanID, err)
	}
}
