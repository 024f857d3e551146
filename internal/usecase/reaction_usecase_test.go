package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func TestReactionUsecase_ToggleCycle(t *testing.T) {
	posts := newFakePostRepo(entity.Post{ID: "post-1"})
	reactions := newFakeReactionRepo()
	cache := newFakeFeedCache()
	uc := usecase.NewReactionUsecase(reactions, posts, logger.NewNop())
	uc.SetFeedCache(cache)
	ctx := context.Background()

	got, err := uc.ToggleClientReaction(ctx, "c1", "post-1", entity.ReactionLike)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.ReactionLike, *got)
	assert.Equal(t, [2]int64{1, 0}, posts.ReactionCounts["post-1"])

	_, err = uc.ToggleClientReaction(ctx, "c2", "post-1", entity.ReactionDislike)
	require.NoError(t, err)
	got, err = uc.ToggleClientReaction(ctx, "c1", "post-1", entity.ReactionDislike)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.ReactionDislike, *got)
	assert.Equal(t, [2]int64{0, 2}, posts.ReactionCounts["post-1"])

	got, err = uc.ToggleClientReaction(ctx, "c1", "post-1", entity.ReactionDislike)
	require.NoError(t, err)
	assert.Nil(t, got)

	current, err := uc.GetClientReaction(ctx, "c1", "post-1")
	require.NoError(t, err)
	assert.Nil(t, current)

	likes, dislikes, err := uc.GetReactionCounts(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)
	assert.Equal(t, 4, cache.Invalidated)
}

func TestReactionUsecase_UnknownPost(t *testing.T) {
	uc := usecase.NewReactionUsecase(newFakeReactionRepo(), newFakePostRepo(), logger.NewNop())

	_, err := uc.ToggleClientReaction(context.Background(), "c1", "missing", entity.ReactionLike)
	assert.True(t, errors.Is(err, contract.ErrPostNotFound))
}

func TestReactionUsecase_InvalidKind(t *testing.T) {
	uc := usecase.NewReactionUsecase(newFakeReactionRepo(), newFakePostRepo(entity.Post{ID: "p"}), logger.NewNop())

	_, err := uc.ToggleClientReaction(context.Background(), "c1", "p", entity.ReactionType("meh"))
	assert.True(t, errors.Is(err, usecase.ErrInvalidReaction))
}
