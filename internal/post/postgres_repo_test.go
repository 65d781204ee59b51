package post_test

import (
	"context"
	"testing"
	"time"

	"blogapi/internal/post"
	"blogapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepo_Integration(t *testing.T) {
	pool := testutil.OpenDB(t)
	repo := post.NewPostgresRepo(pool, 2*time.Second)
	service := post.NewService(repo)
	ctx := context.Background()

	fiction, err := service.Create(ctx, post.Fields{
		Title: "Top 10 Secrets", Content: testutil.LongContent, Summary: "ok", Category: post.CategoryFiction,
	})
	require.NoError(t, err)
	assert.NotZero(t, fiction.ID)

	_, err = service.Create(ctx, post.Fields{
		Title: "Guess What", Content: testutil.LongContent, Category: post.CategoryNonFiction,
	})
	require.NoError(t, err)

	t.Run("list by category", func(t *testing.T) {
		posts, total, err := repo.List(ctx, post.Query{Category: post.CategoryFiction, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, posts, 1)
		assert.Equal(t, fiction.ID, posts[0].ID)

		_, total, err = repo.List(ctx, post.Query{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("update", func(t *testing.T) {
		summary := "a better summary"
		updated, err := service.Update(ctx, fiction.ID, post.Patch{Summary: &summary})
		require.NoError(t, err)
		assert.Equal(t, summary, updated.Summary)

		got, err := repo.GetByID(ctx, fiction.ID)
		require.NoError(t, err)
		assert.Equal(t, summary, got.Summary)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, fiction.ID))
		_, err := repo.GetByID(ctx, fiction.ID)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})
}
