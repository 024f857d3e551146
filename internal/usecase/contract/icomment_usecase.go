package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

type ICommentUseCase interface {
	// GetPostComments lists a post's comments oldest first with author display data.
	GetPostComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error)
	// CreateComment stores a client comment. userID is the signed-in account, or nil.
	CreateComment(ctx context.Context, postID, content string, userID *string) (*entity.CommentWithAuthor, error)
}
