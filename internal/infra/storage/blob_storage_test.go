package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) service.MediaStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() {
		_ = bucket.Close()
	})

	return NewBlobStorage(bucket)
}

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	storage := newMemStorage(t)
	ctx := context.Background()

	ref, err := storage.Save(ctx, "offers", "Logo Final.PNG", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "media/offers/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	obj, err := storage.Open(ctx, ref)
	require.NoError(t, err)
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(len("png-bytes")), obj.Size)

	require.NoError(t, storage.Delete(ctx, ref))
	_, err = storage.Open(ctx, ref)
	assert.ErrorIs(t, err, service.ErrMediaNotFound)

	require.NoError(t, storage.Delete(ctx, ref))
}

func TestBlobStorage_RejectsBadReferences(t *testing.T) {
	storage := newMemStorage(t)
	ctx := context.Background()

	for _, ref := range []string{"", "offers/x.png", "media/", "media/../secret"} {
		_, err := storage.Open(ctx, ref)
		assert.ErrorIs(t, err, service.ErrMediaNotFound, ref)
	}

	_, err := storage.Save(ctx, "../etc", "x.png", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".jpg", extension("photo.JPG"))
	assert.Equal(t, "", extension("archive"))
	assert.Equal(t, "", extension("evil.p$p"))
	assert.Equal(t, "", extension("long.extension"))
}
