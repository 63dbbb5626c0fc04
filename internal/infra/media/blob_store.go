// Package media stores uploaded images in a gocloud.dev blob bucket.
package media

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"brewmenu/config"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	"brewmenu/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

var extensionsByType = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// contentKeyLength is the number of checksum hex digits used in object keys.
const contentKeyLength = 20

type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the dependencies for the media store.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket URL (mem://, file:///dir or gs://bucket).
func New(params Params) (service.MediaStore, error) {
	url := params.Config.Media.BucketURL

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", url)
	}

	params.Logger.Info("media bucket opened", slog.String("url", url))
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket), nil
}

func NewBlobStore(bucket *blob.Bucket) service.MediaStore {
	return &blobStore{bucket: bucket}
}

// IsAllowedContentType reports whether uploads of this type are accepted.
func IsAllowedContentType(contentType string) bool {
	_, ok := extensionsByType[baseType(contentType)]

	return ok
}

func baseType(contentType string) string {
	t, _, _ := strings.Cut(contentType, ";")

	return strings.ToLower(strings.TrimSpace(t))
}

// Put writes data under a content-addressed key in the name directory, e.g. "logos/<sha256 prefix>.png".
// Only image types are accepted.
func (s *blobStore) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	ext, ok := extensionsByType[baseType(contentType)]
	if !ok {
		return "", domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  "file",
			Reason: "unsupported content type " + contentType,
		})
	}

	key := path.Join(name, util.Checksum(data)[:contentKeyLength]+ext)

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write media %s", key)
	}

	return key, nil
}

func (s *blobStore) Open(ctx context.Context, key string) (*service.MediaObject, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrMediaNotFound
		}

		return nil, errors.Wrapf(err, "failed to stat media %s", key)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrMediaNotFound
		}

		return nil, errors.Wrapf(err, "failed to open media %s", key)
	}

	return &service.MediaObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
		ETag:        attrs.ETag,
	}, nil
}

// Delete removes key. A missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete media %s", key)
	}

	return nil
}
