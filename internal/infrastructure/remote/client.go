package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// ErrUnexpectedStatus is returned for any non-2xx answer the caller has no mapping for.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// APIClient talks to the feed API over HTTP.
type APIClient struct {
	baseURL   string
	token     string
	http      *http.Client
	validator usecasecontract.IValidator
}

var (
	_ contract.IReactionRemote = (*APIClient)(nil)
	_ contract.IFeedSource     = (*APIClient)(nil)
)

// NewAPIClient creates a client for the API rooted at baseURL. token, when set, is sent
// as a bearer token. Requests are bounded only by their context.
func NewAPIClient(baseURL, token string, v usecasecontract.IValidator, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &APIClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		http:      httpClient,
		validator: v,
	}
}

// GetClientReaction calls the get_client_reaction procedure.
func (c *APIClient) GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error) {
	req := dto.GetClientReactionRequest{ClientID: clientID, PostID: postID}
	var resp dto.ReactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rpc/get_client_reaction", req, &resp); err != nil {
		return nil, err
	}
	return c.reactionResult(resp), nil
}

// ToggleClientReaction calls the toggle_client_reaction procedure.
func (c *APIClient) ToggleClientReaction(ctx context.Context, clientID, postID string, reaction entity.ReactionType) (*entity.ReactionType, error) {
	req := dto.ToggleClientReactionRequest{ClientID: clientID, PostID: postID, Reaction: string(reaction)}
	var resp dto.ReactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/rpc/toggle_client_reaction", req, &resp); err != nil {
		return nil, err
	}
	return c.reactionResult(resp), nil
}

// reactionResult treats any value outside like/dislike as no reaction.
func (c *APIClient) reactionResult(resp dto.ReactionResponse) *entity.ReactionType {
	if resp.Reaction == nil {
		return nil
	}
	if err := c.validator.ValidateStruct(resp); err != nil {
		return nil
	}
	return entity.ReactionType(*resp.Reaction).Ptr()
}

// FetchPosts returns the whole post collection, newest first.
func (c *APIClient) FetchPosts(ctx context.Context) ([]entity.Post, error) {
	var resp dto.FeedResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToPosts(), nil
}

// FetchPost returns a single post or contract.ErrPostNotFound.
func (c *APIClient) FetchPost(ctx context.Context, postID string) (*entity.Post, error) {
	var resp dto.PostResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(postID), nil, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, contract.ErrPostNotFound
		}
		return nil, err
	}
	return &resp.Post, nil
}

// FetchComments returns the comments of a post oldest first.
func (c *APIClient) FetchComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	var resp dto.CommentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", nil, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, contract.ErrPostNotFound
		}
		return nil, err
	}
	return resp.Comments, nil
}

// AddComment posts a comment as the signed-in user, or anonymously without a token.
func (c *APIClient) AddComment(ctx context.Context, postID, content string) (*entity.CommentWithAuthor, error) {
	var resp entity.CommentWithAuthor
	req := dto.CreateCommentRequest{Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/v1/posts/"+url.PathEscape(postID)+"/comments", req, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, contract.ErrPostNotFound
		}
		return nil, err
	}
	return &resp, nil
}

// FetchTopics returns the interest topic catalogue.
func (c *APIClient) FetchTopics(ctx context.Context) ([]string, error) {
	var resp dto.TopicsResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/interests/topics", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Topics, nil
}

// CurrentUser returns the signed-in user, or nil when the request is anonymous.
func (c *APIClient) CurrentUser(ctx context.Context) (*entity.AuthUser, error) {
	var resp dto.CurrentUserResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/user", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

var errNotFound = fmt.Errorf("%w: 404", ErrUnexpectedStatus)

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(io.LimitReader(res.Body, 4096)).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, res.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
