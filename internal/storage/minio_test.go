package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwdtc/bridgewater-dems/internal/config"
)

type fakeObjects struct {
	puts    map[string][]byte
	removed []string
	exists  bool
	err     error
}

func (f *fakeObjects) BucketExists(context.Context, string) (bool, error) {
	return f.exists, f.err
}

func (f *fakeObjects) GetObject(context.Context, string, string, minio.GetObjectOptions) (*minio.Object, error) {
	return nil, f.err
}

func (f *fakeObjects) PutObject(_ context.Context, _, object string, r io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.err != nil {
		return minio.UploadInfo{}, f.err
	}
	b, _ := io.ReadAll(r)
	f.puts[object] = b
	return minio.UploadInfo{Key: object, Size: int64(len(b))}, nil
}

func (f *fakeObjects) RemoveObject(_ context.Context, _, object string, _ minio.RemoveObjectOptions) error {
	f.removed = append(f.removed, object)
	return f.err
}

func TestMinIOStore_SetDeletePing(t *testing.T) {
	fake := &fakeObjects{puts: map[string][]byte{}, exists: true}
	s := &MinIOStore{client: fake, bucket: "content", prefix: "kv/"}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeySiteContent, []byte(`{}`)))
	assert.Equal(t, []byte(`{}`), fake.puts["kv/siteContent.json"])

	require.NoError(t, s.Delete(ctx, KeySiteContent))
	assert.Equal(t, []string{"kv/siteContent.json"}, fake.removed)

	assert.NoError(t, s.Ping(ctx))
	fake.exists = false
	assert.Error(t, s.Ping(ctx))
}

func TestMinIOStore_Errors(t *testing.T) {
	fake := &fakeObjects{puts: map[string][]byte{}, err: errors.New("offline")}
	s := &MinIOStore{client: fake, bucket: "content"}
	ctx := context.Background()

	assert.ErrorContains(t, s.Set(ctx, "k", []byte("v")), "offline")
	_, err := s.Get(ctx, "k")
	assert.ErrorContains(t, err, "offline")
}

func TestMapMinIOError(t *testing.T) {
	missing := minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}
	assert.ErrorIs(t, mapMinIOError(missing), ErrNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, mapMinIOError(other))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"missing endpoint", config.MinIOConfig{}, "endpoint is required"},
		{"missing credentials", config.MinIOConfig{Endpoint: "localhost:9000"}, "credentials are required"},
		{"missing bucket", config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, "bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
