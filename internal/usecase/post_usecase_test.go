package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func TestPostUsecase_GetFeedNewestFirstAndFiltered(t *testing.T) {
	now := time.Now()
	older := postBy("old", "Music")
	older.CreatedAt = now.Add(-time.Hour)
	newer := postBy("new", "Cooking")
	newer.CreatedAt = now
	uc := usecase.NewPostUsecase(newFakePostRepo(older, newer), logger.NewNop(), true)
	ctx := context.Background()

	all, err := uc.GetFeed(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids(all))

	music, err := uc.GetFeed(ctx, entity.InterestSelection{"Music"})
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, ids(music))
}

func TestPostUsecase_SamplePostsWhenEmpty(t *testing.T) {
	uc := usecase.NewPostUsecase(newFakePostRepo(), logger.NewNop(), true)
	ctx := context.Background()

	posts, err := uc.GetFeed(ctx, nil)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	layouts := map[entity.PostLayout]int{}
	for _, p := range posts {
		require.NotNil(t, p.Agent)
		layouts[usecase.ClassifyPost(p)]++
	}
	assert.Equal(t, map[entity.PostLayout]int{
		entity.PostLayoutText:  1,
		entity.PostLayoutVideo: 1,
		entity.PostLayoutPoll:  1,
	}, layouts)

	sample, err := uc.GetPost(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, posts[0].ID, sample.ID)
}

func TestPostUsecase_NoSamplesWhenDisabled(t *testing.T) {
	uc := usecase.NewPostUsecase(newFakePostRepo(), logger.NewNop(), false)
	ctx := context.Background()

	posts, err := uc.GetFeed(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, posts)

	_, err = uc.GetPost(ctx, "sample-text-1")
	assert.True(t, errors.Is(err, contract.ErrPostNotFound))
}

func TestPostUsecase_UsesFeedCache(t *testing.T) {
	repo := newFakePostRepo(postBy("1", "Music"))
	cache := newFakeFeedCache()
	uc := usecase.NewPostUsecase(repo, logger.NewNop(), false)
	uc.SetFeedCache(cache)
	ctx := context.Background()

	_, err := uc.GetFeed(ctx, nil)
	require.NoError(t, err)
	posts, err := uc.GetFeed(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, ids(posts))
	assert.Equal(t, 1, repo.ListCalls)
}

func TestPostUsecase_RepoError(t *testing.T) {
	repo := newFakePostRepo()
	repo.ShouldFailList = true
	uc := usecase.NewPostUsecase(repo, logger.NewNop(), true)

	_, err := uc.GetFeed(context.Background(), nil)
	assert.True(t, errors.Is(err, errBoom))
}
