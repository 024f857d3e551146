package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/localstore"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

type fakeFeedSource struct {
	mu         sync.Mutex
	posts      []entity.Post
	ShouldFail bool
	fetches    int
}

var _ contract.IFeedSource = (*fakeFeedSource)(nil)

func (s *fakeFeedSource) FetchPosts(ctx context.Context) ([]entity.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.ShouldFail {
		return nil, errBoom
	}
	return append([]entity.Post(nil), s.posts...), nil
}

func (s *fakeFeedSource) Fetches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

func (s *fakeFeedSource) setFail(fail bool) {
	s.mu.Lock()
	s.ShouldFail = fail
	s.mu.Unlock()
}

func (s *fakeFeedSource) FetchPost(ctx context.Context, postID string) (*entity.Post, error) {
	return nil, contract.ErrPostNotFound
}

func (s *fakeFeedSource) FetchComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	return nil, nil
}

func (s *fakeFeedSource) AddComment(ctx context.Context, postID, content string) (*entity.CommentWithAuthor, error) {
	return nil, errBoom
}

func (s *fakeFeedSource) FetchTopics(ctx context.Context) ([]string, error) {
	return usecase.SampleTopics(), nil
}

func (s *fakeFeedSource) CurrentUser(ctx context.Context) (*entity.AuthUser, error) {
	return nil, nil
}

func TestFeedPoller_StartFiltersAndRefilters(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := &fakeFeedSource{posts: []entity.Post{postBy("1", "Music"), postBy("2", "Cooking")}}
	interests := usecase.NewInterestUsecase(localstore.NewMemoryStore(), logger.NewNop())
	ctx := context.Background()
	_, err := interests.SaveInterests(ctx, []string{"Cooking"})
	require.NoError(t, err)

	poller := usecase.NewFeedPoller(source, interests, logger.NewNop(), time.Hour)
	var mu sync.Mutex
	var updates [][]string
	poller.OnUpdate(func(posts []entity.Post) {
		mu.Lock()
		updates = append(updates, ids(posts))
		mu.Unlock()
	})

	require.NoError(t, poller.Start(ctx))
	defer poller.Stop()

	assert.Equal(t, []string{"2"}, ids(poller.Posts()))

	require.NoError(t, interests.ClearInterests(ctx))
	assert.Equal(t, []string{"1", "2"}, ids(poller.Refilter(ctx)))

	mu.Lock()
	assert.Equal(t, [][]string{{"2"}, {"1", "2"}}, updates)
	mu.Unlock()
	assert.Equal(t, 1, source.Fetches())
}

func TestFeedPoller_FailedRefreshKeepsSnapshot(t *testing.T) {
	source := &fakeFeedSource{posts: []entity.Post{postBy("1", "Music")}}
	interests := usecase.NewInterestUsecase(localstore.NewMemoryStore(), logger.NewNop())
	poller := usecase.NewFeedPoller(source, interests, logger.NewNop(), 0)
	ctx := context.Background()

	require.NoError(t, poller.Refresh(ctx))
	source.setFail(true)

	assert.Error(t, poller.Refresh(ctx))
	assert.Equal(t, []string{"1"}, ids(poller.Posts()))
}

func TestFeedPoller_PollsOnInterval(t *testing.T) {
	defer goleak.VerifyNone(t)

	source := &fakeFeedSource{posts: []entity.Post{postBy("1", "Music")}}
	interests := usecase.NewInterestUsecase(localstore.NewMemoryStore(), logger.NewNop())
	poller := usecase.NewFeedPoller(source, interests, logger.NewNop(), time.Second)

	require.NoError(t, poller.Start(context.Background()))
	require.Eventually(t, func() bool { return source.Fetches() >= 2 }, 5*time.Second, 50*time.Millisecond)
	poller.Stop()

	after := source.Fetches()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, source.Fetches(), "no fetches after Stop")
}
