package receipt

import (
	"Yoriview-Backend/internal/utils/storage"
	"context"
	"github.com/gofiber/fiber/v2/log"
)

const receiptImageFolder = "receipts"

type (
	// StoredImage is what ends up in Receipt.OriginalImg. ObjectKey is set
	// only when the image was uploaded and can be rolled back.
	StoredImage struct {
		Value     string
		ObjectKey string
	}

	ImageStore struct {
		s3 storage.AwsS3
	}
)

// NewImageStore accepts a nil bucket, in which case images stay inline as data URIs.
func NewImageStore(s3 storage.AwsS3) *ImageStore {
	return &ImageStore{s3: s3}
}

// Persist resolves the image for a receipt. A data URI, or the raw bytes of a
// staged scan when img is empty, is uploaded to the bucket. Any other string
// is kept as given.
func (s *ImageStore) Persist(ctx context.Context, img string, staged []byte) (StoredImage, error) {
	data, isData := storage.DecodeDataURI(img)
	if img == "" && len(staged) > 0 {
		data, isData = staged, true
	}
	if !isData {
		return StoredImage{Value: img}, nil
	}
	if s.s3 == nil {
		if img != "" {
			return StoredImage{Value: img}, nil
		}
		return StoredImage{Value: storage.EncodeDataURI(data)}, nil
	}

	objectKey, err := s.s3.UploadBytes(ctx, data, receiptImageFolder, storage.AllowImage...)
	if err != nil {
		return StoredImage{}, err
	}
	return StoredImage{Value: s.s3.GetPublicLinkKey(objectKey), ObjectKey: objectKey}, nil
}

// Discard removes an uploaded image after the rows that referenced it were rolled back.
func (s *ImageStore) Discard(ctx context.Context, image StoredImage) {
	if s.s3 == nil || image.ObjectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, image.ObjectKey); err != nil {
		log.Warnf("failed to delete orphaned receipt image %s: %v", image.ObjectKey, err)
	}
}
