package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/localstore"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

func TestInterests_SaveAndLoad(t *testing.T) {
	store := localstore.NewMemoryStore()
	uc := usecase.NewInterestUsecase(store, logger.NewNop())
	ctx := context.Background()

	saved, err := uc.SaveInterests(ctx, []string{" Music", "Art", "Music", ""})
	require.NoError(t, err)
	assert.Equal(t, entity.InterestSelection{"Music", "Art"}, saved)

	raw, err := store.Get(ctx, "selectedInterests")
	require.NoError(t, err)
	assert.JSONEq(t, `["Music","Art"]`, raw)

	assert.Equal(t, entity.InterestSelection{"Music", "Art"}, uc.SelectedInterests(ctx))
}

func TestInterests_Limits(t *testing.T) {
	uc := usecase.NewInterestUsecase(localstore.NewMemoryStore(), logger.NewNop())
	ctx := context.Background()

	_, err := uc.SaveInterests(ctx, []string{"a", "b", "c", "d", "e", "f"})
	assert.True(t, errors.Is(err, usecase.ErrTooManyInterests))

	_, err = uc.SaveInterests(ctx, []string{"  "})
	assert.True(t, errors.Is(err, usecase.ErrNoInterests))
}

func TestInterests_MalformedValueReadsAsEmpty(t *testing.T) {
	store := localstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "selectedInterests", "{not json"))

	uc := usecase.NewInterestUsecase(store, logger.NewNop())

	assert.True(t, uc.SelectedInterests(ctx).Empty())
}

func TestInterests_Toggle(t *testing.T) {
	store := localstore.NewMemoryStore()
	uc := usecase.NewInterestUsecase(store, logger.NewNop())
	ctx := context.Background()

	for _, topic := range []string{"a", "b", "c", "d", "e"} {
		_, err := uc.ToggleInterest(ctx, topic)
		require.NoError(t, err)
	}

	current, err := uc.ToggleInterest(ctx, "f")
	assert.True(t, errors.Is(err, usecase.ErrTooManyInterests))
	assert.Len(t, current, entity.MaxInterests)

	next, err := uc.ToggleInterest(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, entity.InterestSelection{"a", "b", "d", "e"}, next)
}

func TestInterests_RemovingLastClearsKey(t *testing.T) {
	store := localstore.NewMemoryStore()
	uc := usecase.NewInterestUsecase(store, logger.NewNop())
	ctx := context.Background()

	_, err := uc.ToggleInterest(ctx, "Music")
	require.NoError(t, err)
	next, err := uc.ToggleInterest(ctx, "Music")
	require.NoError(t, err)
	assert.True(t, next.Empty())

	keys, err := store.Keys(ctx, "selectedInterests")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSampleTopics_ReturnsCopy(t *testing.T) {
	topics := usecase.SampleTopics()
	require.NotEmpty(t, topics)
	topics[0] = "changed"
	assert.NotEqual(t, "changed", usecase.SampleTopics()[0])
}
