package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
)

type InterestHandler struct{}

func NewInterestHandler() *InterestHandler {
	return &InterestHandler{}
}

// GetTopics lists the topics a client may pick interests from.
func (h *InterestHandler) GetTopics(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.TopicsResponse{Topics: usecase.SampleTopics()})
}
