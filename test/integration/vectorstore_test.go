package integration

import (
	"context"
	"testing"

	"luma-companion-be/pkg/embedding"
	"luma-companion-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testVector(seed float32) []float32 {
	vec := make([]float32, embedding.Dimensions)
	vec[0] = seed
	vec[1] = 1
	return vec
}

func TestPgVectorStore(t *testing.T) {
	db := openTestDB(t)
	store := vectorstore.NewPgVectorStore(db)
	ctx := context.Background()

	t.Run("collection creation is idempotent", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())

		first, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)
		second, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		assert.Equal(t, first.Id, second.Id)
		assert.Equal(t, embedding.Dimensions, first.Dimensions)
	})

	t.Run("query returns nearest neighbors first", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())
		col, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		assert.NoError(t, store.Upsert(ctx, col, "near", testVector(1.0), "the near document"))
		assert.NoError(t, store.Upsert(ctx, col, "far", testVector(50.0), "the far document"))

		results, err := store.Query(ctx, col, testVector(1.1), 2)
		assert.NoError(t, err)
		if assert.Len(t, results, 2) {
			assert.Equal(t, "the near document", results[0].Document)
			assert.Equal(t, "the far document", results[1].Document)
			assert.Greater(t, results[0].Similarity, results[1].Similarity)
		}
	})

	t.Run("upsert replaces an existing record", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())
		col, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		assert.NoError(t, store.Upsert(ctx, col, "rec-1", testVector(2.0), "first version"))
		assert.NoError(t, store.Upsert(ctx, col, "rec-1", testVector(2.0), "second version"))

		results, err := store.Query(ctx, col, testVector(2.0), 5)
		assert.NoError(t, err)
		if assert.Len(t, results, 1) {
			assert.Equal(t, "second version", results[0].Document)
		}
	})

	t.Run("empty collection yields no results", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())
		col, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		results, err := store.Query(ctx, col, testVector(3.0), 5)
		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty query vector yields no results", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())
		col, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		assert.NoError(t, store.Upsert(ctx, col, "rec-1", testVector(4.0), "a document"))

		results, err := store.Query(ctx, col, nil, 5)
		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("dimension mismatch is an error", func(t *testing.T) {
		name := vectorstore.UserHistoryCollection(uuid.New())
		col, err := store.GetOrCreateCollection(ctx, name, embedding.Dimensions)
		assert.NoError(t, err)

		_, err = store.Query(ctx, col, []float32{1, 2, 3}, 5)
		assert.Error(t, err)
	})
}
