// Package integrations holds glue to external collaborators of the generator.
// The produced file is handed over as an opaque artifact; nothing here is part
// of the generation core.
package integrations

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Uploader puts a local file into an S3 bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
	logger *zap.Logger
}

// S3UploaderOption is a functional option for configuring S3Uploader.
type S3UploaderOption func(*S3Uploader)

// WithLogger sets a custom logger for the uploader.
func WithLogger(logger *zap.Logger) S3UploaderOption {
	return func(u *S3Uploader) {
		u.logger = logger
	}
}

// NewS3Uploader creates an uploader using the default AWS credential chain.
func NewS3Uploader(ctx context.Context, bucket, region string, opts ...S3UploaderOption) (*S3Uploader, error) {
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	u := &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Upload puts the file at localPath into the bucket under key.
func (u *S3Uploader) Upload(ctx context.Context, localPath, key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", localPath, err)
	}
	defer file.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("uploading %s to s3://%s/%s: %w", localPath, u.bucket, key, err)
	}

	u.logger.Info("uploaded file",
		zap.String("path", localPath),
		zap.String("bucket", u.bucket),
		zap.String("key", key),
	)
	return nil
}
