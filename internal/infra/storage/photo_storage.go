// Package storage keeps uploaded store photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"regexp"

	"delicious/config"
	domainerrors "delicious/internal/domain/errors"
	"delicious/internal/domain/lifecycle"
	"delicious/internal/domain/service"
	"delicious/internal/errors"
	"delicious/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// Accepted upload types and the extension stored with the key.
var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// refPattern matches keys produced by Save; anything else is not a photo.
var refPattern = regexp.MustCompile(`^[0-9a-f-]{36}\.(jpg|png|gif|webp)$`)

type blobPhotoStorage struct {
	bucket  *blob.Bucket
	maxSize int64
	logger  *slog.Logger
}

// Params holds dependencies for PhotoStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.PhotoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	cfg := params.Config.Storage
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Photo storage ready", slog.String("bucket", cfg.BucketURL))

	return NewBlobPhotoStorage(bucket, cfg.MaxPhotoSize, params.Logger), nil
}

// NewBlobPhotoStorage wraps an open bucket. The caller owns the bucket.
func NewBlobPhotoStorage(bucket *blob.Bucket, maxSize int64, logger *slog.Logger) service.PhotoStorage {
	return &blobPhotoStorage{bucket: bucket, maxSize: maxSize, logger: logger}
}

// Save writes the photo under a fresh random key.
func (s *blobPhotoStorage) Save(ctx context.Context, contentType string, data []byte) (string, error) {
	ext, ok := photoExtensions[contentType]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo must be a jpeg, png, gif or webp image")
	}
	if len(data) == 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo is empty")
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", domainerrors.ErrValidationFailed.WithDetails("photo is larger than " + util.FormatBytes(s.maxSize))
	}

	ref := uuid.NewString() + "." + ext
	err := s.bucket.WriteAll(ctx, ref, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to write photo")
	}

	s.logger.DebugContext(ctx, "Photo stored", slog.String("ref", ref), slog.Int("bytes", len(data)))

	return ref, nil
}

// Open streams a stored photo.
func (s *blobPhotoStorage) Open(ctx context.Context, ref string) (*service.Photo, error) {
	if !refPattern.MatchString(path.Base(ref)) || path.Base(ref) != ref {
		return nil, domainerrors.ErrPhotoNotFound
	}

	reader, err := s.bucket.NewReader(ctx, ref, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to open photo")
	}

	return &service.Photo{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}

func (s *blobPhotoStorage) Delete(ctx context.Context, ref string) error {
	if !refPattern.MatchString(path.Base(ref)) || path.Base(ref) != ref {
		return nil
	}

	if err := s.bucket.Delete(ctx, ref); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete photo")
	}

	s.logger.DebugContext(ctx, "Photo deleted", slog.String("ref", ref))

	return nil
}
