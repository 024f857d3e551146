package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

const feedCacheKey = "feed:posts:all"

// PostUsecase serves the post collection.
type PostUsecase struct {
	postRepo      contract.IPostRepository
	logger        usecasecontract.IAppLogger
	feedCache     contract.IFeedCache
	samplePosts   bool
	samplePostsAt func() time.Time
}

var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// NewPostUsecase creates a PostUsecase. When samplePosts is set an empty collection is
// replaced by a fixed set of demonstration posts.
func NewPostUsecase(postRepo contract.IPostRepository, logger usecasecontract.IAppLogger, samplePosts bool) *PostUsecase {
	return &PostUsecase{
		postRepo:      postRepo,
		logger:        logger,
		samplePosts:   samplePosts,
		samplePostsAt: time.Now,
	}
}

// SetFeedCache enables caching of the post list.
func (uc *PostUsecase) SetFeedCache(cache contract.IFeedCache) {
	uc.feedCache = cache
}

// GetFeed returns every post newest first, filtered by interests when any are given.
func (uc *PostUsecase) GetFeed(ctx context.Context, interests entity.InterestSelection) ([]entity.Post, error) {
	posts, err := uc.allPosts(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 && uc.samplePosts {
		posts = SamplePosts(uc.samplePostsAt())
	}
	return FilterPostsByInterests(posts, interests), nil
}

// GetPost retrieves a single post by ID.
func (uc *PostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetPostByID(ctx, postID)
	if err == nil {
		return post, nil
	}
	if uc.samplePosts && errors.Is(err, contract.ErrPostNotFound) {
		for _, p := range SamplePosts(uc.samplePostsAt()) {
			if p.ID == postID {
				return &p, nil
			}
		}
	}
	return nil, err
}

func (uc *PostUsecase) allPosts(ctx context.Context) ([]entity.Post, error) {
	if uc.feedCache != nil {
		t0 := time.Now()
		cached, found, err := uc.feedCache.GetFeed(ctx, feedCacheKey)
		elapsed := time.Since(t0)
		switch {
		case err == nil && found && cached != nil:
			metrics.IncFeedHit()
			metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: feed key=%s took=%s", feedCacheKey, elapsed)
			return cached.Posts, nil
		case err == nil:
			metrics.IncFeedMiss()
			metrics.AddMissDuration(elapsed.Seconds())
			uc.logger.Debugf("cache miss: feed key=%s took=%s", feedCacheKey, elapsed)
		default:
			uc.logger.Warnf("cache error: feed key=%s err=%v took=%s", feedCacheKey, err, elapsed)
		}
	}

	dbStart := time.Now()
	found, err := uc.postRepo.GetPosts(ctx, &contract.PostFilterOptions{SortOrder: "desc"})
	if err != nil {
		uc.logger.Errorf("failed to get posts: %v", err)
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	uc.logger.Debugf("db fetch: posts count=%d took=%s", len(found), time.Since(dbStart))

	posts := make([]entity.Post, 0, len(found))
	for _, p := range found {
		posts = append(posts, *p)
	}

	if uc.feedCache != nil && len(posts) > 0 {
		if err := uc.feedCache.SetFeed(ctx, feedCacheKey, &contract.CachedFeed{Posts: posts}); err != nil {
			uc.logger.Warnf("cache set failed: feed key=%s err=%v", feedCacheKey, err)
		}
	}
	return posts, nil
}
