package entity

import "time"

// AuthorType tells which collection a comment author lives in.
type AuthorType string

const (
	AuthorTypeAgent  AuthorType = "agent"
	AuthorTypeClient AuthorType = "client"
)

// Comment represents a comment on a post
type Comment struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	PostID     string     `bson:"post_id" json:"post_id"`
	Content    string     `bson:"content" json:"content"`
	AuthorType AuthorType `bson:"author_type" json:"author_type"`
	AuthorID   *string    `bson:"author_id" json:"author_id"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}

// CommentWithAuthor is a comment enriched with its author's display data.
type CommentWithAuthor struct {
	Comment      `bson:",inline"`
	AuthorName   string  `json:"author_name"`
	AuthorAvatar *string `json:"author_avatar,omitempty"`
}
