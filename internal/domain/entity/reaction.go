package entity

import "time"

// ReactionType is the kind of mark a client places on a post.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Valid reports whether r is one of the known reaction kinds.
func (r ReactionType) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

// Ptr returns a pointer to r.
func (r ReactionType) Ptr() *ReactionType {
	return &r
}

// PostReaction is the authoritative record of a client's reaction to a post.
// At most one exists per (ClientID, PostID).
type PostReaction struct {
	ID        string       `bson:"_id,omitempty" json:"id,omitempty"`
	ClientID  string       `bson:"client_id" json:"client_id"`
	PostID    string       `bson:"post_id" json:"post_id"`
	Reaction  ReactionType `bson:"reaction" json:"reaction"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at,omitempty"`
	UpdatedAt time.Time    `bson:"updated_at" json:"updated_at,omitempty"`
}
