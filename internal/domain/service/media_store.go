package service

import (
	"context"
	"io"
)

// MediaObject is an opened stored file.
type MediaObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	ETag        string
}

// MediaStore keeps uploaded images such as the shop logo.
type MediaStore interface {
	// Put stores data and returns its key.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)

	// Open returns the object stored under key. The caller closes Body.
	Open(ctx context.Context, key string) (*MediaObject, error)

	Delete(ctx context.Context, key string) error
}
