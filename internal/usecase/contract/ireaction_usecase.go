package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IReactionUseCase backs the get_client_reaction and toggle_client_reaction procedures.
type IReactionUseCase interface {
	GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error)
	ToggleClientReaction(ctx context.Context, clientID, postID string, reaction entity.ReactionType) (*entity.ReactionType, error)
	GetReactionCounts(ctx context.Context, postID string) (likes, dislikes int64, err error)
}
