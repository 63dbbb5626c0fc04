package media

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "brewmenu/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_PutOpenDelete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket)
	ctx := context.Background()

	key, err := store.Put(ctx, "logos", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "logos/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	obj, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())

	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.EqualValues(t, len("png-bytes"), obj.Size)

	require.NoError(t, store.Delete(ctx, key))
	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, domainerrors.ErrMediaNotFound)
}

func TestBlobStore_SameContentSameKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket)
	ctx := context.Background()

	first, err := store.Put(ctx, "logos", "image/png", []byte("logo"))
	require.NoError(t, err)
	second, err := store.Put(ctx, "logos", "image/png", []byte("logo"))
	require.NoError(t, err)
	other, err := store.Put(ctx, "logos", "image/png", []byte("other logo"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestBlobStore_RejectsNonImages(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := NewBlobStore(bucket).Put(context.Background(), "logos", "text/html", []byte("<html>"))

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "file", validationErr.Fields[0].Field)
}

func TestIsAllowedContentType(t *testing.T) {
	assert.True(t, IsAllowedContentType("image/png"))
	assert.True(t, IsAllowedContentType("image/svg+xml; charset=utf-8"))
	assert.False(t, IsAllowedContentType("text/html"))
	assert.False(t, IsAllowedContentType(""))
}
