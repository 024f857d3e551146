package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/middleware"
)

// AuthHandler reports the optional signed-in identity resolved by middleware.OptionalAuth.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// GetCurrentUser answers {"user": null} for anonymous requests.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		SuccessHandler(c, http.StatusOK, dto.CurrentUserResponse{})
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CurrentUserResponse{
		User: &entity.AuthUser{ID: userID, Email: c.GetString(middleware.ContextUserEmail)},
	})
}
