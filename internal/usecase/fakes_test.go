package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/localstore"
)

var errBoom = errors.New("boom")

// fakeRemote is an in-memory reaction server.
type fakeRemote struct {
	mu sync.Mutex

	ShouldFailGet    bool
	ShouldFailToggle bool
	// Override, when set, is returned by ToggleClientReaction instead of the computed state.
	Override *entity.ReactionType
	// Block, when set, holds ToggleClientReaction until it is closed.
	Block chan struct{}
	// Entered receives a value as ToggleClientReaction starts.
	Entered chan struct{}

	reactions   map[string]entity.ReactionType
	GetCalls    int
	ToggleCalls int
}

var _ contract.IReactionRemote = (*fakeRemote)(nil)

func newFakeRemote() *fakeRemote {
	return &fakeRemote{reactions: make(map[string]entity.ReactionType)}
}

func (f *fakeRemote) GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetCalls++
	if f.ShouldFailGet {
		return nil, errBoom
	}
	if r, ok := f.reactions[clientID+"/"+postID]; ok {
		return r.Ptr(), nil
	}
	return nil, nil
}

func (f *fakeRemote) ToggleClientReaction(ctx context.Context, clientID, postID string, reaction entity.ReactionType) (*entity.ReactionType, error) {
	if f.Entered != nil {
		f.Entered <- struct{}{}
	}
	if f.Block != nil {
		<-f.Block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ToggleCalls++
	if f.ShouldFailToggle {
		return nil, errBoom
	}
	if f.Override != nil {
		return f.Override, nil
	}
	key := clientID + "/" + postID
	if current, ok := f.reactions[key]; ok && current == reaction {
		delete(f.reactions, key)
		return nil, nil
	}
	f.reactions[key] = reaction
	return reaction.Ptr(), nil
}

func (f *fakeRemote) set(clientID, postID string, r entity.ReactionType) {
	f.mu.Lock()
	f.reactions[clientID+"/"+postID] = r
	f.mu.Unlock()
}

// flakyStore wraps a MemoryStore and can fail reads or writes.
type flakyStore struct {
	*localstore.MemoryStore
	FailGet bool
	FailSet bool
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryStore: localstore.NewMemoryStore()}
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, error) {
	if s.FailGet {
		return "", errBoom
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	if s.FailSet {
		return errBoom
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type fixedUUID struct {
	mu    sync.Mutex
	ids   []string
	calls int
}

func (f *fixedUUID) NewUUID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.ids[f.calls%len(f.ids)]
	f.calls++
	return id
}

// fakePostRepo holds posts in memory.
type fakePostRepo struct {
	mu             sync.Mutex
	posts          map[string]*entity.Post
	ShouldFailList bool
	ListCalls      int
	CommentBumps   map[string]int
	ReactionCounts map[string][2]int64
}

var _ contract.IPostRepository = (*fakePostRepo)(nil)

func newFakePostRepo(posts ...entity.Post) *fakePostRepo {
	r := &fakePostRepo{
		posts:          make(map[string]*entity.Post),
		CommentBumps:   make(map[string]int),
		ReactionCounts: make(map[string][2]int64),
	}
	for i := range posts {
		p := posts[i]
		r.posts[p.ID] = &p
	}
	return r
}

func (r *fakePostRepo) GetPosts(ctx context.Context, opts *contract.PostFilterOptions) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	if r.ShouldFailList {
		return nil, errBoom
	}
	out := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePostRepo) GetPostByID(ctx context.Context, postID string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) CreatePost(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) IncrementCommentCount(ctx context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CommentBumps[postID]++
	return nil
}

func (r *fakePostRepo) SetReactionCounts(ctx context.Context, postID string, likes, dislikes int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ReactionCounts[postID] = [2]int64{likes, dislikes}
	return nil
}

// fakeReactionRepo stores one reaction per client and post.
type fakeReactionRepo struct {
	mu        sync.Mutex
	reactions map[[2]string]entity.PostReaction
}

var _ contract.IReactionRepository = (*fakeReactionRepo)(nil)

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[[2]string]entity.PostReaction)}
}

func (r *fakeReactionRepo) UpsertReaction(ctx context.Context, reaction *entity.PostReaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reactions[[2]string{reaction.ClientID, reaction.PostID}] = *reaction
	return nil
}

func (r *fakeReactionRepo) DeleteReaction(ctx context.Context, clientID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]string{clientID, postID}
	if _, ok := r.reactions[key]; !ok {
		return contract.ErrReactionNotFound
	}
	delete(r.reactions, key)
	return nil
}

func (r *fakeReactionRepo) GetReaction(ctx context.Context, clientID, postID string) (*entity.PostReaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reaction, ok := r.reactions[[2]string{clientID, postID}]
	if !ok {
		return nil, contract.ErrReactionNotFound
	}
	return &reaction, nil
}

func (r *fakeReactionRepo) CountByPostIDAndType(ctx context.Context, postID string, reactionType entity.ReactionType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key, reaction := range r.reactions {
		if key[1] == postID && reaction.Reaction == reactionType {
			n++
		}
	}
	return n, nil
}

// fakeFeedCache is an in-memory feed cache.
type fakeFeedCache struct {
	mu          sync.Mutex
	feeds       map[string]*contract.CachedFeed
	Invalidated int
}

var _ contract.IFeedCache = (*fakeFeedCache)(nil)

func newFakeFeedCache() *fakeFeedCache {
	return &fakeFeedCache{feeds: make(map[string]*contract.CachedFeed)}
}

func (c *fakeFeedCache) GetFeed(ctx context.Context, key string) (*contract.CachedFeed, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	feed, ok := c.feeds[key]
	return feed, ok, nil
}

func (c *fakeFeedCache) SetFeed(ctx context.Context, key string, feed *contract.CachedFeed) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feeds[key] = feed
	return nil
}

func (c *fakeFeedCache) InvalidateFeed(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.feeds = make(map[string]*contract.CachedFeed)
	c.Invalidated++
	return nil
}
