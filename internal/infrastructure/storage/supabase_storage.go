package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkout_hub/internal/config"
	"checkout_hub/internal/usecase/interfaces"
)

const errorBodyReadLimit int64 = 1024

var ErrInvalidImageURL = errors.New("image url does not reference a stored object")

// SupabaseStorage removes objects from a Supabase Storage bucket through the
// REST API with the service role key.
type SupabaseStorage struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	bucket     string
}

var _ interfaces.IImageStorage = (*SupabaseStorage)(nil)

type Option func(*SupabaseStorage)

func WithHTTPClient(client *http.Client) Option {
	return func(s *SupabaseStorage) {
		if client != nil {
			s.httpClient = client
		}
	}
}

func NewSupabaseStorage(cfg config.StorageConfig, opts ...Option) *SupabaseStorage {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &SupabaseStorage{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.SupabaseURL), "/"),
		apiKey:     strings.TrimSpace(cfg.ServiceRoleKey),
		bucket:     strings.TrimSpace(cfg.Bucket),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Delete removes the object behind a public or signed image URL. Deleting an
// object that is already gone is not an error.
func (s *SupabaseStorage) Delete(ctx context.Context, imageURL string) error {
	name, err := s.objectName(imageURL)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string][]string{"prefixes": {name}})
	if err != nil {
		return fmt.Errorf("encode delete request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, url.PathEscape(s.bucket))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete object %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return fmt.Errorf("delete object %s: status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// objectName extracts the bucket-relative path from
// .../storage/v1/object/{public|sign}/{bucket}/{path}. URLs that do not carry
// the bucket segment fall back to their last path element.
func (s *SupabaseStorage) objectName(imageURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil || parsed.Path == "" {
		return "", ErrInvalidImageURL
	}
	path := strings.Trim(parsed.Path, "/")

	marker := "/" + s.bucket + "/"
	if idx := strings.Index("/"+path, marker); idx >= 0 && s.bucket != "" {
		name := ("/" + path)[idx+len(marker):]
		if name != "" {
			return name, nil
		}
	}

	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return "", ErrInvalidImageURL
	}
	return name, nil
}

// NoopStorage is used when no storage backend is configured.
type NoopStorage struct{}

func (NoopStorage) Delete(context.Context, string) error { return nil }
