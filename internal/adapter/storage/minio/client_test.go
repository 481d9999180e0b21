package minio

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/GoArmGo/UnsplashGateway/internal/config"
)

// fakeS3 — минимальный path-style S3: бакеты и PUT объектов.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	bucket := parts[0]

	switch {
	case len(parts) == 1 && r.Method == http.MethodHead:
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case len(parts) == 1 && r.Method == http.MethodPut:
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case len(parts) == 2 && r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = string(body)
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestConfig(endpoint string) *appconfig.Config {
	return &appconfig.Config{
		MinioEndpoint:        endpoint,
		MinioAccessKeyID:     "minio",
		MinioSecretAccessKey: "minio-secret",
		MinioBucketName:      "archive",
		MinioRegion:          "us-east-1",
	}
}

func TestNewMinioClient_CreatesBucketAndUploads(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	fake := &fakeS3{buckets: map[string]bool{}, objects: map[string]string{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	endpoint := strings.TrimPrefix(srv.URL, "http://")
	ctx := context.Background()

	client, err := NewMinioClient(ctx, newTestConfig(endpoint), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.True(t, fake.buckets["archive"])

	url, err := client.UploadFile(ctx, "unsplash-photos/abc", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/archive/unsplash-photos/abc", url)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Contains(t, fake.objects["/archive/unsplash-photos/abc"], "jpeg-bytes")
	assert.Equal(t, "image/jpeg", fake.types["/archive/unsplash-photos/abc"])
}

func TestNewMinioClient_RequiresCredentials(t *testing.T) {
	_, err := NewMinioClient(context.Background(), &appconfig.Config{MinioEndpoint: "localhost:9000"}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
