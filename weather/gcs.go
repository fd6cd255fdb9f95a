package weather

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
)

// GCSStore serves EPW files out of a Google Cloud Storage bucket.
type GCSStore struct {
	client   *storage.Client
	bucket   string
	cacheDir string
}

// NewGCSStore builds a GCSStore using application default credentials.
func NewGCSStore(ctx context.Context, bucket, cacheDir string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("weather: gcs client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket, cacheDir: cacheDir}, nil
}

// Path downloads filename from the bucket if not already cached
// locally and returns the local path.
func (s *GCSStore) Path(ctx context.Context, filename string) (string, error) {
	local := filepath.Join(s.cacheDir, filename)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	r, err := s.client.Bucket(s.bucket).Object(filename).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("weather: gcs open %s: %w", filename, err)
	}
	defer r.Close()

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("weather: cache dir: %w", err)
	}
	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("weather: create cache file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("weather: write cache file: %w", err)
	}
	return local, nil
}
