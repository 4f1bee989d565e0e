package receipt_test

import (
	"Yoriview-Backend/domain"
	"Yoriview-Backend/internal/testutil"
	"Yoriview-Backend/internal/utils/storage"
	"Yoriview-Backend/pkg/receipt"
	"context"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type fakeS3 struct {
	objects map[string][]byte
	deleted []string
	failPut bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) UploadBytes(ctx context.Context, data []byte, folder string, allowed ...string) (string, error) {
	if f.failPut {
		return "", errors.New("s3 unavailable")
	}
	key := fmt.Sprintf("%s/%d.png", folder, len(f.objects)+1)
	f.objects[key] = data
	return key, nil
}

func (f *fakeS3) DeleteFile(ctx context.Context, objectKey string) error {
	delete(f.objects, objectKey)
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestSaveReceiptWithItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := receipt.NewReceiptService(receipt.NewReceiptRepository(db), receipt.NewImageStore(nil))
	ctx := context.Background()

	saved, err := svc.SaveReceipt(ctx, "user-1", domain.SaveReceiptRequest{
		RestaurantName: "Store",
		ReceiptDate:    "2024-05-01",
		OriginalImg:    "plain-reference",
		Items: []domain.ReceiptItemRequest{
			{Name: "Noodles", Price: 9000},
			{Name: "Dumplings", Price: 6000, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "plain-reference", saved.OriginalImg)
	require.NotNil(t, saved.ReceiptDate)
	assert.Equal(t, "2024-05-01", saved.ReceiptDate.Format(domain.ReceiptDateLayout))

	_, err = svc.SaveReceipt(ctx, "user-2", domain.SaveReceiptRequest{RestaurantName: "Other"})
	require.NoError(t, err)

	mine, err := svc.GetMyReceipts(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Items, 2)

	quantities := map[string]int{}
	for _, item := range mine[0].Items {
		quantities[item.Name] = item.Quantity
	}
	assert.Equal(t, map[string]int{"Noodles": 1, "Dumplings": 2}, quantities)
}

func TestSaveReceiptRejectsBadInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := receipt.NewReceiptService(receipt.NewReceiptRepository(db), receipt.NewImageStore(nil))
	ctx := context.Background()

	_, err := svc.SaveReceipt(ctx, "user-1", domain.SaveReceiptRequest{ReceiptDate: "01/05/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidReceiptDate)

	_, err = svc.SaveReceipt(ctx, "user-1", domain.SaveReceiptRequest{Items: []domain.ReceiptItemRequest{{Name: "x", Price: -1}}})
	assert.ErrorIs(t, err, domain.ErrValidation)

	mine, err := svc.GetMyReceipts(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestImageStore(t *testing.T) {
	ctx := context.Background()
	uri := storage.EncodeDataURI(pngBytes)

	t.Run("inline without bucket", func(t *testing.T) {
		store := receipt.NewImageStore(nil)

		img, err := store.Persist(ctx, "", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, uri, img.Value)
		assert.Empty(t, img.ObjectKey)

		img, err = store.Persist(ctx, uri, nil)
		require.NoError(t, err)
		assert.Equal(t, uri, img.Value)
	})

	t.Run("uploads data to bucket", func(t *testing.T) {
		s3 := newFakeS3()
		store := receipt.NewImageStore(s3)

		img, err := store.Persist(ctx, uri, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.example/receipts/1.png", img.Value)
		assert.Equal(t, pngBytes, s3.objects[img.ObjectKey])

		store.Discard(ctx, img)
		assert.Equal(t, []string{img.ObjectKey}, s3.deleted)
	})

	t.Run("keeps links untouched", func(t *testing.T) {
		s3 := newFakeS3()
		store := receipt.NewImageStore(s3)

		img, err := store.Persist(ctx, "https://cdn.example/r.png", pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/r.png", img.Value)
		assert.Empty(t, s3.objects)
	})
}
