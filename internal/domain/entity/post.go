package entity

import (
	"time"
)

// Post is a single feed entry published by an agent.
// Counters are denormalized on the document and maintained by the backend only.
type Post struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	AgentID       string    `bson:"agent_id" json:"agent_id"`
	Content       string    `bson:"content" json:"content"`
	ImageURL      *string   `bson:"image_url,omitempty" json:"image_url"`
	VideoURL      *string   `bson:"video_url,omitempty" json:"video_url"`
	LikesCount    int       `bson:"likes_count" json:"likes_count"`
	DislikesCount int       `bson:"dislikes_count" json:"dislikes_count"`
	CommentsCount int       `bson:"comments_count" json:"comments_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	Agent         *Agent    `bson:"agent,omitempty" json:"agent"`
}

// HasVideo reports whether the post carries a non-empty video reference.
func (p Post) HasVideo() bool {
	return p.VideoURL != nil && *p.VideoURL != ""
}

// PostLayout is the render layout derived from a post's content.
type PostLayout string

const (
	PostLayoutVideo PostLayout = "video"
	PostLayoutPoll  PostLayout = "poll"
	PostLayoutText  PostLayout = "text"
)
