package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// ReactionStore keeps a client's like/dislike state per post.
// The local store is written first and is the source of truth for the session;
// the remote store is updated on a best-effort basis.
type ReactionStore struct {
	session *ClientSession
	store   contract.ILocalStore
	remote  contract.IReactionRemote
	logger  usecasecontract.IAppLogger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewReactionStore creates and returns a new ReactionStore instance.
func NewReactionStore(session *ClientSession, store contract.ILocalStore, remote contract.IReactionRemote, logger usecasecontract.IAppLogger) *ReactionStore {
	return &ReactionStore{
		session:  session,
		store:    store,
		remote:   remote,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// GetClientIdentity returns the identity reactions are recorded under.
func (s *ReactionStore) GetClientIdentity(ctx context.Context) string {
	return s.session.ClientID(ctx)
}

// GetUserReaction returns the client's reaction to a post, or nil when there is none.
// A cached value wins; otherwise the remote store is consulted and its answer cached.
func (s *ReactionStore) GetUserReaction(ctx context.Context, postID string) *entity.ReactionType {
	if cached := s.cachedReaction(ctx, postID); cached != nil {
		return cached
	}

	clientID := s.session.ClientID(ctx)
	if clientID == "" {
		return nil
	}

	reaction, err := s.remote.GetClientReaction(ctx, clientID, postID)
	if err != nil {
		s.logger.Errorf("error fetching reaction for post %s: %v", postID, err)
		return nil
	}
	if reaction == nil || !reaction.Valid() {
		return nil
	}

	s.writeCache(ctx, postID, reaction)
	return reaction
}

// ToggleReaction applies a like or dislike to a post.
// Selecting the current kind again clears it. The new state is cached before the
// remote call; when the remote call fails the cached state is returned, otherwise
// the remote's answer is cached and returned.
func (s *ReactionStore) ToggleReaction(ctx context.Context, postID string, kind entity.ReactionType) (*entity.ReactionType, error) {
	if !kind.Valid() {
		return nil, ErrInvalidReaction
	}
	if !s.acquire(postID) {
		return s.cachedReaction(ctx, postID), ErrReactionInFlight
	}
	defer s.release(postID)

	current := s.cachedReaction(ctx, postID)
	var optimistic *entity.ReactionType
	if current == nil || *current != kind {
		optimistic = kind.Ptr()
	}
	s.writeCache(ctx, postID, optimistic)

	clientID := s.session.ClientID(ctx)
	if clientID == "" {
		return optimistic, nil
	}

	confirmed, err := s.remote.ToggleClientReaction(ctx, clientID, postID, kind)
	if err != nil {
		s.logger.Errorf("error toggling reaction for post %s: %v", postID, err)
		return optimistic, nil
	}
	if confirmed != nil && !confirmed.Valid() {
		confirmed = nil
	}
	if !sameReaction(confirmed, optimistic) {
		s.logger.Infof("server reaction for post %s differs from local state, using server value", postID)
	}

	s.writeCache(ctx, postID, confirmed)
	return confirmed, nil
}

// CachedReactions returns every locally cached reaction keyed by post ID.
func (s *ReactionStore) CachedReactions(ctx context.Context) (map[string]entity.ReactionType, error) {
	keys, err := s.store.Keys(ctx, reactionKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list cached reactions: %w", err)
	}
	out := make(map[string]entity.ReactionType, len(keys))
	for _, key := range keys {
		postID := strings.TrimPrefix(key, reactionKeyPrefix)
		if r := s.cachedReaction(ctx, postID); r != nil {
			out[postID] = *r
		}
	}
	return out, nil
}

// IsToggling reports whether a toggle for the post is still in flight.
func (s *ReactionStore) IsToggling(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.inFlight[postID]
	return busy
}

func (s *ReactionStore) acquire(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[postID]; busy {
		return false
	}
	s.inFlight[postID] = struct{}{}
	return true
}

func (s *ReactionStore) release(postID string) {
	s.mu.Lock()
	delete(s.inFlight, postID)
	s.mu.Unlock()
}

func (s *ReactionStore) cachedReaction(ctx context.Context, postID string) *entity.ReactionType {
	value, err := s.store.Get(ctx, reactionKey(postID))
	if err != nil {
		if !errors.Is(err, contract.ErrKeyNotFound) {
			s.logger.Warnf("failed to read cached reaction for post %s: %v", postID, err)
		}
		return nil
	}
	reaction := entity.ReactionType(value)
	if !reaction.Valid() {
		return nil
	}
	return &reaction
}

func (s *ReactionStore) writeCache(ctx context.Context, postID string, reaction *entity.ReactionType) {
	var err error
	if reaction == nil {
		err = s.store.Delete(ctx, reactionKey(postID))
	} else {
		err = s.store.Set(ctx, reactionKey(postID), string(*reaction))
	}
	if err != nil {
		s.logger.Warnf("failed to cache reaction for post %s: %v", postID, err)
	}
}

func sameReaction(a, b *entity.ReactionType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
