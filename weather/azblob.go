package weather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
)

// AzBlobStore serves EPW files out of an Azure Blob container.
type AzBlobStore struct {
	client    *azblob.Client
	container string
	cacheDir  string
}

// NewAzBlobStore builds an AzBlobStore for the given service URL and
// container, authenticating with the given credential.
func NewAzBlobStore(serviceURL, container, cacheDir string, cred azcore.TokenCredential) (*AzBlobStore, error) {
	client, err := azblob.NewClient(serviceURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("weather: azblob client: %w", err)
	}
	return &AzBlobStore{client: client, container: container, cacheDir: cacheDir}, nil
}

// Path downloads filename from the container if not already cached
// locally and returns the local path.
func (s *AzBlobStore) Path(ctx context.Context, filename string) (string, error) {
	local := filepath.Join(s.cacheDir, filename)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("weather: cache dir: %w", err)
	}
	f, err := os.Create(local)
	if err != nil {
		return "", fmt.Errorf("weather: create cache file: %w", err)
	}
	defer f.Close()

	if _, err := s.client.DownloadFile(ctx, s.container, filename, f, nil); err != nil {
		return "", fmt.Errorf("weather: azblob download %s: %w", filename, err)
	}
	return local, nil
}
