package service

import (
	"context"
	"io"
)

// Photo is an opened stored photo. Callers close Body.
type Photo struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// PhotoStorage keeps uploaded store photos.
type PhotoStorage interface {
	// Save stores data and returns the reference to persist on the store.
	Save(ctx context.Context, contentType string, data []byte) (string, error)

	// Open returns the photo stored under ref.
	Open(ctx context.Context, ref string) (*Photo, error)

	// Delete removes the photo stored under ref. A missing photo is not an error.
	Delete(ctx context.Context, ref string) error
}
