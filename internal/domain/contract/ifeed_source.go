package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IFeedSource fetches the full post collection and the data hanging off a post.
type IFeedSource interface {
	FetchPosts(ctx context.Context) ([]entity.Post, error)
	FetchPost(ctx context.Context, postID string) (*entity.Post, error)
	FetchComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error)
	AddComment(ctx context.Context, postID, content string) (*entity.CommentWithAuthor, error)
	FetchTopics(ctx context.Context) ([]string, error)
	CurrentUser(ctx context.Context) (*entity.AuthUser, error)
}
