package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// MockReactionUsecase keeps reactions in memory keyed by client and post.
type MockReactionUsecase struct {
	ShouldFailGetReaction    bool
	ShouldFailToggleReaction bool

	// KnownPosts limits toggles to these post IDs when non-empty.
	KnownPosts []string

	mu        sync.Mutex
	reactions map[reactionKey]entity.ReactionType
}

type reactionKey struct{ clientID, postID string }

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{reactions: make(map[reactionKey]entity.ReactionType)}
}

func (m *MockReactionUsecase) GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error) {
	if m.ShouldFailGetReaction {
		return nil, errors.New("failed to get reaction")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.reactions[reactionKey{clientID, postID}]; ok {
		return r.Ptr(), nil
	}
	return nil, nil
}

func (m *MockReactionUsecase) ToggleClientReaction(ctx context.Context, clientID, postID string, reaction entity.ReactionType) (*entity.ReactionType, error) {
	if m.ShouldFailToggleReaction {
		return nil, errors.New("failed to toggle reaction")
	}
	if !reaction.Valid() {
		return nil, usecase.ErrInvalidReaction
	}
	if len(m.KnownPosts) > 0 && !contains(m.KnownPosts, postID) {
		return nil, contract.ErrPostNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reactionKey{clientID, postID}
	if current, ok := m.reactions[key]; ok && current == reaction {
		delete(m.reactions, key)
		return nil, nil
	}
	m.reactions[key] = reaction
	return reaction.Ptr(), nil
}

func (m *MockReactionUsecase) GetReactionCounts(ctx context.Context, postID string) (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var likes, dislikes int64
	for key, r := range m.reactions {
		if key.postID != postID {
			continue
		}
		if r == entity.ReactionLike {
			likes++
		} else {
			dislikes++
		}
	}
	return likes, dislikes, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
