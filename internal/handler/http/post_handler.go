package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// PostHandlerInterface is implemented by PostHandler.
type PostHandlerInterface interface {
	GetFeedHandler(*gin.Context)
	GetPostHandler(*gin.Context)
}

var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// GetFeedHandler lists posts newest first. ?interests=a,b narrows the list by agent interests.
func (h *PostHandler) GetFeedHandler(c *gin.Context) {
	interests := parseInterests(c.QueryArray("interests"))
	posts, err := h.postUsecase.GetFeed(c.Request.Context(), interests)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToFeedResponse(posts, usecase.ClassifyPost))
}

// GetPostHandler returns a single post.
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	postID := c.Param("postID")
	if strings.TrimSpace(postID) == "" {
		ErrorHandler(c, http.StatusBadRequest, "Post ID is required")
		return
	}
	post, err := h.postUsecase.GetPost(c.Request.Context(), postID)
	if err != nil {
		notFoundOr(c, err, "Failed to load post")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostResponse(*post, usecase.ClassifyPost))
}

// parseInterests accepts both ?interests=a,b and repeated ?interests= values.
func parseInterests(values []string) entity.InterestSelection {
	var out entity.InterestSelection
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
