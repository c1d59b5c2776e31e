package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPathShardsAndSanitizes(t *testing.T) {
	path := objectPath("a1b2c3d4-0000-0000-0000-000000000000", "my report.pdf")
	assert.Equal(t, "a1/a1b2c3d4-0000-0000-0000-000000000000_my_report.pdf", path)

	// path traversal in the filename must not escape the shard directory
	path = objectPath("a1b2c3d4-0000-0000-0000-000000000000", "../../etc/passwd")
	assert.Equal(t, "a1/a1b2c3d4-0000-0000-0000-000000000000_passwd", path)
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	storagePath, err := store.Upload(ctx, "deadbeef-0000-0000-0000-000000000000", "notes.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	rc, err := store.Download(ctx, storagePath)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(ctx, storagePath))

	_, err = store.Download(ctx, storagePath)
	assert.Error(t, err)

	// deleting an already-missing blob is not an error
	assert.NoError(t, store.Delete(ctx, storagePath))
}
