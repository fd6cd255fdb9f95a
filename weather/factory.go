package weather

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"idfgen/config"
)

// NewFromConfig builds the one active Store backend for this
// deployment. The Azure backend authenticates via a SAS- or
// public-access container URL; callers needing AAD credentials
// construct NewAzBlobStore directly.
func NewFromConfig(ctx context.Context, cfg *config.Config, cacheDir string) (Store, error) {
	switch cfg.Weather.Backend {
	case "s3":
		return NewS3Store(ctx, cfg.Weather.S3Bucket, cacheDir)
	case "azblob":
		client, err := azblob.NewClientWithNoCredential(cfg.Weather.AzureServiceURL, nil)
		if err != nil {
			return nil, fmt.Errorf("weather: azblob client: %w", err)
		}
		return &AzBlobStore{client: client, container: cfg.Weather.AzureContainer, cacheDir: cacheDir}, nil
	case "gcs":
		return NewGCSStore(ctx, cfg.Weather.GCSBucket, cacheDir)
	default:
		return nil, fmt.Errorf("weather: unknown backend %q", cfg.Weather.Backend)
	}
}
