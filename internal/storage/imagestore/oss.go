package imagestore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"

	"artfolio/internal/config"
)

type ossClient interface {
	PutObject(ctx context.Context, request *oss.PutObjectRequest, optFns ...func(*oss.Options)) (*oss.PutObjectResult, error)
	DeleteObject(ctx context.Context, request *oss.DeleteObjectRequest, optFns ...func(*oss.Options)) (*oss.DeleteObjectResult, error)
}

// OSSStore keeps images in an Aliyun OSS bucket exposed under publicURL.
type OSSStore struct {
	client    ossClient
	bucket    string
	publicURL string
	now       func() time.Time
}

func NewOSSStore(cfg config.OSSConfig) *OSSStore {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	return newOSSStore(oss.NewClient(ossCfg), cfg.Bucket, cfg.PublicURL)
}

func newOSSStore(client ossClient, bucket, publicURL string) *OSSStore {
	return &OSSStore{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
		now:       time.Now,
	}
}

func (s *OSSStore) Store(ctx context.Context, r io.Reader, contentType string) (string, error) {
	const op = "imagestore.OSSStore.Store"

	key := objectKey(s.now().UTC(), contentType)

	_, err := s.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.bucket),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(contentType),
		Body:        r,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return joinURL(s.publicURL, key), nil
}

func (s *OSSStore) Delete(ctx context.Context, url string) error {
	const op = "imagestore.OSSStore.Delete"

	key, ok := keyFromURL(s.publicURL, url)
	if !ok {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
