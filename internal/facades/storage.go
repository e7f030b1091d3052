package facades

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adenmarket/adenmarket/internal/logger"
)

// StorageFacade uploads objects to an HTTP blob store and returns their
// public URLs. Size limits are enforced by callers before the upload is
// attempted.
type StorageFacade struct {
	baseURL string
	bucket  string
	apiKey  string
	client  *http.Client
}

// NewStorageFacade creates a facade against the store's object API.
func NewStorageFacade(baseURL, bucket, apiKey string, timeout time.Duration) *StorageFacade {
	return &StorageFacade{
		baseURL: baseURL,
		bucket:  bucket,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Upload stores the object under the given path and returns its public URL.
func (f *StorageFacade) Upload(ctx context.Context, objectPath string, data []byte) (string, error) {
	uploadURL := fmt.Sprintf("%s/object/%s/%s", f.baseURL, f.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("blob upload request failed", "path", objectPath, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.Log.Errorw("blob upload rejected", "path", objectPath, "status", resp.StatusCode)
		return "", fmt.Errorf("blob store returned status %d", resp.StatusCode)
	}

	return fmt.Sprintf("%s/object/public/%s/%s", f.baseURL, f.bucket, objectPath), nil
}
