package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	appconfig "letterpress_ops/internal/config"
	"letterpress_ops/internal/infrastructure/database"
	"letterpress_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ArtworkStorage keeps order artwork in a private bucket and hands out
// presigned GET URLs for it.
type S3ArtworkStorage struct {
	client  s3API
	presign presignAPI
	bucket  string
}

var _ interfaces.IArtworkStorage = (*S3ArtworkStorage)(nil)

// NewS3ArtworkStorage builds the storage from config. S3_ENDPOINT switches to
// path-style addressing for local S3-compatible servers.
func NewS3ArtworkStorage(ctx context.Context, cfg *appconfig.Config) (*S3ArtworkStorage, error) {
	if cfg.ArtworkBucket == "" {
		return nil, fmt.Errorf("ARTWORK_BUCKET is not set")
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3ArtworkStorage(client, s3.NewPresignClient(client), cfg.ArtworkBucket), nil
}

func newS3ArtworkStorage(client s3API, presign presignAPI, bucket string) *S3ArtworkStorage {
	return &S3ArtworkStorage{client: client, presign: presign, bucket: bucket}
}

func (s *S3ArtworkStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	log.Printf("[artwork][storage] uploaded key=%s size=%d", key, size)
	return nil
}

func (s *S3ArtworkStorage) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if key == "" {
		return "", nil
	}
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return req.URL, nil
}
