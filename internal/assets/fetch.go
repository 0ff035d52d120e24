package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const userAgent = "model-viewer/1.0"

// DefaultTimeout bounds a single asset download.
const DefaultTimeout = 60 * time.Second

// NewHTTPClient returns the client used for listings and downloads.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// Fetch downloads rawURL into destDir under the name name and returns the saved path.
// The body is written to a temporary file first, so a failed download never leaves a partial model behind.
func Fetch(ctx context.Context, client *http.Client, rawURL, destDir, name string) (savedPath string, err error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assets: fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	savedPath = filepath.Join(destDir, sanitizeFilename(name))
	tmp, err := os.CreateTemp(destDir, ".fetch-*")
	if err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("assets: fetch %s: %w", rawURL, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	if err = os.Rename(tmp.Name(), savedPath); err != nil {
		return "", fmt.Errorf("assets: fetch: %w", err)
	}
	return savedPath, nil
}

var safeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "" || name == "." || name == "/" {
		return "model" + DefaultExtension
	}
	name = safeNameRe.ReplaceAllString(name, "_")
	if len(name) > 96 {
		ext := filepath.Ext(name)
		name = name[:96-len(ext)] + ext
	}
	return name
}
