package storage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_hub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, handler http.HandlerFunc) (*SupabaseStorage, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSupabaseStorage(config.StorageConfig{
		SupabaseURL:    srv.URL,
		ServiceRoleKey: "service-key",
		Bucket:         "product-images",
	}, WithHTTPClient(srv.Client())), srv.URL
}

func TestSupabaseStorage_Delete(t *testing.T) {
	var (
		method, path, auth string
		body               map[string][]string
	)
	s, base := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		method, path, auth = r.Method, r.URL.Path, r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	})

	err := s.Delete(context.Background(), base+"/storage/v1/object/public/product-images/links/abc.png")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/storage/v1/object/product-images", path)
	assert.Equal(t, "Bearer service-key", auth)
	assert.Equal(t, []string{"links/abc.png"}, body["prefixes"])
}

func TestSupabaseStorage_DeleteFallsBackToFileName(t *testing.T) {
	var body map[string][]string
	s, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/images/photo.jpg"))
	assert.Equal(t, []string{"photo.jpg"}, body["prefixes"])
}

func TestSupabaseStorage_DeleteMissingObjectIsNotAnError(t *testing.T) {
	s, base := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, s.Delete(context.Background(), base+"/storage/v1/object/public/product-images/x.png"))
}

func TestSupabaseStorage_DeleteServerError(t *testing.T) {
	s, base := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := s.Delete(context.Background(), base+"/storage/v1/object/public/product-images/x.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSupabaseStorage_DeleteInvalidURL(t *testing.T) {
	s, _ := newTestStorage(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	assert.ErrorIs(t, s.Delete(context.Background(), ""), ErrInvalidImageURL)
}
