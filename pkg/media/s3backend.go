package media

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// S3Backend stores media in an S3 bucket fronted by a CDN at baseURL.
type S3Backend struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Backend(ctx context.Context, region, bucket, baseURL string) (*S3Backend, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return &S3Backend{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// Store uploads an image under stories/{year}/{month}/{uuid}.png.
func (s *S3Backend) Store(ctx context.Context, data []byte) (string, error) {
	now := time.Now()
	key := fmt.Sprintf("stories/%d/%02d/%s.png", now.Year(), now.Month(), uuid.New().String())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String("image/png"),
		CacheControl: aws.String("max-age=86400"),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload to s3")
	}

	return key, nil
}

func (s *S3Backend) URL(handle string) string {
	return join(s.baseURL, handle)
}

func (s *S3Backend) Handle(url string) (string, error) {
	return HandleFromURL(s.baseURL, url)
}

func (s *S3Backend) Remove(ctx context.Context, handle string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(handle),
	})

	return err
}
