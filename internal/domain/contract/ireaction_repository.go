package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IReactionRepository defines the interface for reaction data persistence.
type IReactionRepository interface {
	// UpsertReaction creates or replaces the reaction of a client on a post.
	UpsertReaction(ctx context.Context, reaction *entity.PostReaction) error
	DeleteReaction(ctx context.Context, clientID, postID string) error
	GetReaction(ctx context.Context, clientID, postID string) (*entity.PostReaction, error)
	CountByPostIDAndType(ctx context.Context, postID string, reactionType entity.ReactionType) (int64, error)
}
