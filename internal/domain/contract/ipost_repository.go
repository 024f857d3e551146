package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// PostFilterOptions holds database-agnostic parameters for listing posts.
type PostFilterOptions struct {
	AgentID   *string
	Limit     int64
	SortOrder string // "asc" or "desc" on created_at
}

// IPostRepository provides methods for reading posts and maintaining their counters.
type IPostRepository interface {
	GetPosts(ctx context.Context, opts *PostFilterOptions) ([]*entity.Post, error)
	GetPostByID(ctx context.Context, postID string) (*entity.Post, error)
	CreatePost(ctx context.Context, post *entity.Post) error
	IncrementCommentCount(ctx context.Context, postID string) error
	SetReactionCounts(ctx context.Context, postID string, likes, dislikes int64) error
}
