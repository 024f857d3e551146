package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mikiasgoitom/Inflo/internal/handler/http"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/mocks"
)

func setupCommentRouter(h handler.CommentHandlerInterface, userID string) *gin.Engine {
	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserID, userID)
			c.Next()
		})
	}
	r.GET("/posts/:postID/comments", h.GetPostComments)
	r.POST("/posts/:postID/comments", h.CreateComment)
	return r
}

func TestGetPostComments(t *testing.T) {
	r := setupCommentRouter(handler.NewCommentHandler(mocks.NewMockCommentUsecase()), "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/posts/post-1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"author_name":"DJ Agent"`)
}

func TestCreateComment_Anonymous(t *testing.T) {
	mockUsecase := mocks.NewMockCommentUsecase()
	r := setupCommentRouter(handler.NewCommentHandler(mockUsecase), "")

	w := postJSON(r, "/posts/post-1/comments", dto.CreateCommentRequest{Content: "Nice one"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"author_name":"Anonymous"`)
	assert.Nil(t, mockUsecase.LastUserID)
}

func TestCreateComment_SignedIn(t *testing.T) {
	mockUsecase := mocks.NewMockCommentUsecase()
	r := setupCommentRouter(handler.NewCommentHandler(mockUsecase), "user-7")

	w := postJSON(r, "/posts/post-1/comments", dto.CreateCommentRequest{Content: "Nice one"})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUsecase.LastUserID)
	assert.Equal(t, "user-7", *mockUsecase.LastUserID)
}

func TestCreateComment_Blank(t *testing.T) {
	r := setupCommentRouter(handler.NewCommentHandler(mocks.NewMockCommentUsecase()), "")

	w := postJSON(r, "/posts/post-1/comments", dto.CreateCommentRequest{Content: "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Content must not be blank")
}

func TestCreateComment_PostNotFound(t *testing.T) {
	mockUsecase := mocks.NewMockCommentUsecase()
	mockUsecase.PostNotFound = true
	r := setupCommentRouter(handler.NewCommentHandler(mockUsecase), "")

	w := postJSON(r, "/posts/missing/comments", dto.CreateCommentRequest{Content: "hello"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
