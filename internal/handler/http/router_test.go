package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/mikiasgoitom/Inflo/internal/handler/http"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Inflo/internal/infrastructure/config"
)

func setupFullRouter() *gin.Engine {
	cfg := &config.Config{RateLimitPerSecond: 1000, CORSAllowOrigins: []string{"*"}}
	rt := handler.NewRouter(
		mocks.NewMockPostUsecase(),
		mocks.NewMockReactionUsecase(),
		mocks.NewMockCommentUsecase(),
		mocks.NewMockAuthUsecase(),
		cfg,
	)
	r := gin.New()
	rt.SetupRoutes(r)
	return r
}

func TestAuthUser_Anonymous(t *testing.T) {
	r := setupFullRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/user", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
}

func TestAuthUser_BearerToken(t *testing.T) {
	r := setupFullRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/user", nil)
	req.Header.Set("Authorization", "Bearer mock_access_token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":{"id":"mock-user-id","email":"test@example.com"}}`, w.Body.String())
}

func TestAuthUser_BadTokenIsAnonymous(t *testing.T) {
	r := setupFullRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/auth/user", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
}

func TestTopics(t *testing.T) {
	r := setupFullRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/interests/topics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Music"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r := setupFullRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/posts", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/metrics", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inflo_http_requests_total")
}
