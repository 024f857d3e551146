package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
)

const feedKeyPattern = "feed:*"

type FeedCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.IFeedCache = (*FeedCacheStore)(nil)

func NewFeedCacheStore(rdb *redis.Client, ttl time.Duration) *FeedCacheStore {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &FeedCacheStore{rdb: rdb, ttl: ttl}
}

func (c *FeedCacheStore) GetFeed(ctx context.Context, key string) (*contract.CachedFeed, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var feed contract.CachedFeed
	if err := json.Unmarshal(b, &feed); err != nil {
		// corrupt entries behave like a miss and get overwritten
		return nil, false, nil
	}
	return &feed, true, nil
}

func (c *FeedCacheStore) SetFeed(ctx context.Context, key string, feed *contract.CachedFeed) error {
	data, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateFeed drops every cached feed entry.
func (c *FeedCacheStore) InvalidateFeed(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, feedKeyPattern, 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
