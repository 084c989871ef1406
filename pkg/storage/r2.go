package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner defines contract for object storage upload presigning (R2 implementation).
type Presigner interface {
	// PresignUpload returns a time-limited URL allowing a direct PUT of the
	// object identified by key with the given Content-Type.
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}

type r2Storage struct {
	presign *s3.PresignClient
	bucket  string
}

// NewR2Storage creates an R2-backed implementation of Presigner. It expects
// R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY and R2_BUCKET to be
// configured in environment variables. R2 speaks the S3 API, so the standard
// AWS SDK client is pointed at the account endpoint.
func NewR2Storage(ctx context.Context) (Presigner, error) {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	bucket := os.Getenv("R2_BUCKET")

	if accountID == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, fmt.Errorf("missing R2 configuration (R2_ACCOUNT_ID / R2_ACCESS_KEY_ID / R2_SECRET_ACCESS_KEY / R2_BUCKET)")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 client config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID))
	})

	return &r2Storage{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

func (s *r2Storage) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	if s == nil || s.presign == nil {
		return "", fmt.Errorf("r2 storage is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, nil
}
