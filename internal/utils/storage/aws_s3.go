package storage

import (
	"Yoriview-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"slices"
	"strings"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/heic", "image/gif"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("file is empty")
)

type (
	AwsS3 interface {
		UploadBytes(ctx context.Context, data []byte, folder string, allowed ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 returns nil when no bucket is configured.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	if bucket == "" {
		return nil
	}
	region := utils.GetConfig("AWS_S3_REGION")

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

// UploadBytes stores data under folder/<uuid><ext> and returns the object key.
func (a *awsS3) UploadBytes(ctx context.Context, data []byte, folder string, allowed ...string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	mtype := mimetype.Detect(data)
	if len(allowed) > 0 && !slices.Contains(allowed, mtype.String()) {
		return "", fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mtype.String())
	}

	objectKey := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), mtype.Extension())
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mtype.String()),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

// DecodeDataURI returns the payload of a base64 data URI such as
// "data:image/png;base64,....". ok is false for any other string.
func DecodeDataURI(s string) (data []byte, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return nil, false
	}
	meta, payload, found := strings.Cut(s, ",")
	if !found || !strings.HasSuffix(meta, ";base64") {
		return nil, false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return data, true
}

// EncodeDataURI is the inverse of DecodeDataURI, used when no bucket is configured.
func EncodeDataURI(data []byte) string {
	return "data:" + mimetype.Detect(data).String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
