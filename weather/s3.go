package weather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store serves EPW files out of an S3 bucket, downloading to a local
// cache directory on first use.
type S3Store struct {
	client   *s3.Client
	bucket   string
	cacheDir string
}

// NewS3Store builds an S3Store using the default AWS credential chain.
func NewS3Store(ctx context.Context, bucket, cacheDir string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather: load aws config: %w", err)
	}
	return &S3Store{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		cacheDir: cacheDir,
	}, nil
}

// Path downloads filename from the bucket if not already cached
// locally and returns the local path.
func (s *S3Store) Path(ctx context.Context, filename string) (string, error) {
	local := filepath.Join(s.cacheDir, filename)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		return "", fmt.Errorf("weather: s3 get %s: %w", filename, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("weather: cache dir: %w", err)
	}
	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("weather: create cache file: %w", err)
	}
	defer f.Close()

	if _, err := f.ReadFrom(out.Body); err != nil {
		return "", fmt.Errorf("weather: write cache file: %w", err)
	}
	return local, nil
}
