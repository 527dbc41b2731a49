package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "delicious/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, maxSize int64) *blobPhotoStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobPhotoStorage(bucket, maxSize, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobPhotoStorage)
}

func TestBlobPhotoStorage_SaveAndOpen(t *testing.T) {
	s := newTestStorage(t, 1024)
	ctx := context.Background()

	ref, err := s.Save(ctx, "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"))

	photo, err := s.Open(ctx, ref)
	require.NoError(t, err)
	defer photo.Body.Close()

	body, err := io.ReadAll(photo.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", photo.ContentType)
	assert.Equal(t, int64(len("png-bytes")), photo.Size)
}

func TestBlobPhotoStorage_Save_Rejects(t *testing.T) {
	s := newTestStorage(t, 4)
	ctx := context.Background()

	tests := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{name: "not an image", contentType: "application/pdf", data: []byte("pdf")},
		{name: "empty", contentType: "image/jpeg", data: nil},
		{name: "too large", contentType: "image/jpeg", data: []byte("12345")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Save(ctx, tt.contentType, tt.data)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBlobPhotoStorage_Open_NotFound(t *testing.T) {
	s := newTestStorage(t, 0)
	ctx := context.Background()

	for _, ref := range []string{
		"6f1c2d0e-7a8b-4c3d-9e0f-112233445566.png",
		"../secrets.png",
		"config.yaml",
	} {
		_, err := s.Open(ctx, ref)
		assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound, ref)
	}
}

func TestBlobPhotoStorage_Delete(t *testing.T) {
	s := newTestStorage(t, 1024)
	ctx := context.Background()

	ref, err := s.Save(ctx, "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, ref))

	_, err = s.Open(ctx, ref)
	assert.ErrorIs(t, err, domainerrors.ErrPhotoNotFound)

	assert.NoError(t, s.Delete(ctx, ref), "deleting twice")
	assert.NoError(t, s.Delete(ctx, "../config.yaml"))
}
