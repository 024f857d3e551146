package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// Context keys set by OptionalAuth.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// OptionalAuth resolves a bearer token when one is sent. Anonymous requests and
// requests with an unusable token both continue without a user in the context.
func OptionalAuth(authUC usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || authUC == nil {
			c.Next()
			return
		}
		user, err := authUC.Authenticate(c.Request.Context(), token)
		if err == nil && user != nil {
			c.Set(ContextUserID, user.ID)
			c.Set(ContextUserEmail, user.Email)
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
