package dto

import (
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// CreateCommentRequest is the body for adding a comment to a post.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=2000"`
}

// CommentsResponse lists a post's comments oldest first.
type CommentsResponse struct {
	Comments []entity.CommentWithAuthor `json:"comments"`
}
