package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// CachedFeed is the cached payload for the post list endpoint.
type CachedFeed struct {
	Posts []entity.Post `json:"posts"`
}

// IFeedCache defines caching operations for the feed.
type IFeedCache interface {
	GetFeed(ctx context.Context, key string) (*CachedFeed, bool, error)
	SetFeed(ctx context.Context, key string, feed *CachedFeed) error
	InvalidateFeed(ctx context.Context) error
}
