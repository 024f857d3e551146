package dto

import (
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// PostResponse is a post as served to clients, with its derived layout.
type PostResponse struct {
	entity.Post
	Layout entity.PostLayout `json:"layout"`
}

// FeedResponse is the payload of the post list endpoint.
type FeedResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

// ToPostResponse converts an entity.Post using the given classifier.
func ToPostResponse(post entity.Post, classify func(entity.Post) entity.PostLayout) PostResponse {
	return PostResponse{Post: post, Layout: classify(post)}
}

// ToFeedResponse converts a list of posts.
func ToFeedResponse(posts []entity.Post, classify func(entity.Post) entity.PostLayout) FeedResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostResponse(p, classify))
	}
	return FeedResponse{Posts: out, Count: len(out)}
}

// ToPosts strips the response wrapper.
func (f FeedResponse) ToPosts() []entity.Post {
	posts := make([]entity.Post, 0, len(f.Posts))
	for _, p := range f.Posts {
		posts = append(posts, p.Post)
	}
	return posts
}
