package receipt

import (
	"Yoriview-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error
		CreateReceiptWithItems(ctx context.Context, receipt *entities.Receipt, items []*entities.ReceiptItem) error
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		GetReceiptsByUser(ctx context.Context, userID string) ([]*entities.Receipt, error)
		GetReceiptsByIDs(ctx context.Context, ids []string) ([]*entities.Receipt, error)
		GetItemsByReceiptIDs(ctx context.Context, receiptIDs []string) ([]*entities.ReceiptItem, error)
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) CreateReceiptItems(ctx context.Context, items []*entities.ReceiptItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *receiptRepository) CreateReceiptWithItems(ctx context.Context, receipt *entities.Receipt, items []*entities.ReceiptItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewReceiptRepository(tx)
		if err := txRepo.CreateReceipt(ctx, receipt); err != nil {
			return err
		}
		for _, item := range items {
			item.ReceiptID = receipt.ID
		}
		return txRepo.CreateReceiptItems(ctx, items)
	})
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) GetReceiptsByUser(ctx context.Context, userID string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("uploaded_at desc").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetReceiptsByIDs(ctx context.Context, ids []string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if len(ids) == 0 {
		return receipts, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetItemsByReceiptIDs(ctx context.Context, receiptIDs []string) ([]*entities.ReceiptItem, error) {
	var items []*entities.ReceiptItem
	if len(receiptIDs) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("receipt_id IN ?", receiptIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
