package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IReactionRemote is the authoritative reaction store as seen from a client.
// A nil reaction with a nil error means the client has no reaction on the post.
type IReactionRemote interface {
	GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error)
	ToggleClientReaction(ctx context.Context, clientID, postID string, reaction entity.ReactionType) (*entity.ReactionType, error)
}
