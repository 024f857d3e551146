package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func newSeedFixture() (*usecase.SeedUsecase, *fakeAgentRepo, *fakePostRepo, *fakeClientRepo) {
	agents := &fakeAgentRepo{agents: map[string]*entity.Agent{}}
	posts := newFakePostRepo()
	clients := &fakeClientRepo{}
	uc := usecase.NewSeedUsecase(agents, posts, clients, &fixedUUID{ids: []string{"client-1"}}, logger.NewNop())
	return uc, agents, posts, clients
}

func TestSeedSamplePosts(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc, _, posts, _ := newSeedFixture()

	n, err := uc.SeedSamplePosts(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, len(usecase.SamplePosts(now)), n)

	stored, err := posts.GetPostByID(ctx, "sample-video-1")
	require.NoError(t, err)
	assert.Equal(t, "sample-agent-2", stored.AgentID)

	agents, err := uc.Agents(ctx)
	require.NoError(t, err)
	assert.Len(t, agents, 3)

	t.Run("second run inserts nothing", func(t *testing.T) {
		n, err := uc.SeedSamplePosts(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, n)

		agents, err := uc.Agents(ctx)
		require.NoError(t, err)
		assert.Len(t, agents, 3)
	})
}

func TestRegisterClient(t *testing.T) {
	ctx := context.Background()
	uc, _, _, clients := newSeedFixture()

	client, created, err := uc.RegisterClient(ctx, "user-9", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "client-1", client.ID)
	assert.Equal(t, "user-9", client.Nickname)

	again, created, err := uc.RegisterClient(ctx, "user-9", "Nine")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, client.ID, again.ID)
	assert.Len(t, clients.clients, 1)

	_, _, err = uc.RegisterClient(ctx, "", "anon")
	assert.Error(t, err)
}
