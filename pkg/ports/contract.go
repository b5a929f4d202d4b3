package ports

import (
	"context"
	"testing"

	"github.com/castkit/scenevault/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBlobStoreContract runs a suite of tests to verify that a BlobStore
// implementation adheres to the defined interface contract.
func RunBlobStoreContract(t *testing.T, store BlobStore) {
	ctx := context.Background()

	t.Run("Write and Read", func(t *testing.T) {
		err := store.Write(ctx, "alpha", []byte(`{"typeTag":"root"}`))
		require.NoError(t, err, "Write should not return error")

		data, err := store.Read(ctx, "alpha")
		require.NoError(t, err, "Read should not return error")
		assert.Equal(t, `{"typeTag":"root"}`, string(data))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "alpha", []byte("first")))
		require.NoError(t, store.Write(ctx, "alpha", []byte("second")))

		data, err := store.Read(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("Empty placeholder", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "empty", nil))

		data, err := store.Read(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, data)

		ok, err := store.Exists(ctx, "empty")
		require.NoError(t, err)
		assert.True(t, ok, "empty placeholder should still exist")
	})

	t.Run("Read Non-Existent", func(t *testing.T) {
		_, err := store.Read(ctx, "no-such-document")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Exists", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "beta", []byte("x")))

		ok, err := store.Exists(ctx, "beta")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "no-such-document")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "gamma", []byte("x")))
		require.NoError(t, store.Delete(ctx, "gamma"))

		_, err := store.Read(ctx, "gamma")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// Idempotent.
		assert.NoError(t, store.Delete(ctx, "gamma"))
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Write(ctx, "zulu", []byte("x")))
		require.NoError(t, store.Write(ctx, "alpha", []byte("x")))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "zulu")
		assert.Contains(t, names, "alpha")
		assert.IsIncreasing(t, names, "List should be in lexical order")
	})
}
