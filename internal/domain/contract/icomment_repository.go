package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// GetByPostID lists a post's comments oldest first.
	GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)
}
