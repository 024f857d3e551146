package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// CommentHandlerInterface is implemented by CommentHandler.
type CommentHandlerInterface interface {
	GetPostComments(*gin.Context)
	CreateComment(*gin.Context)
}

var _ CommentHandlerInterface = (*CommentHandler)(nil)

type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUC: commentUC,
	}
}

func (h *CommentHandler) GetPostComments(c *gin.Context) {
	postID := c.Param("postID")
	comments, err := h.commentUC.GetPostComments(c.Request.Context(), postID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CommentsResponse{Comments: comments})
}

// CreateComment adds a comment as the signed-in user, or anonymously.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	postID := c.Param("postID")

	var userID *string
	if v := c.GetString(middleware.ContextUserID); v != "" {
		userID = &v
	}

	comment, err := h.commentUC.CreateComment(c.Request.Context(), postID, req.Content, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyComment) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		notFoundOr(c, err, "Failed to add comment")
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}
