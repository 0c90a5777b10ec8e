package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"vendas_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrMissingImageBucket = errors.New("missing PRODUCT_IMAGES_BUCKET")

// S3ImageStore stores product images in an S3 bucket and returns the public
// object URL to persist on the product record.

type S3ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IImageStore = (*S3ImageStore)(nil)

func NewS3ImageStore(client *s3.Client, bucket, region string) (*S3ImageStore, error) {
	if bucket == "" {
		log.Printf("[image][store] missing PRODUCT_IMAGES_BUCKET")
		return nil, ErrMissingImageBucket
	}
	return &S3ImageStore{client: client, bucket: bucket, region: region}, nil
}

func (s *S3ImageStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		log.Printf("[image][store] upload failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	log.Printf("[image][store] upload success bucket=%s key=%s url=%s", s.bucket, key, url)
	return url, nil
}
