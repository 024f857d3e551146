package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// ReactionUsecase handles the authoritative like/dislike state of clients on posts.
type ReactionUsecase struct {
	reactionRepo contract.IReactionRepository
	postRepo     contract.IPostRepository
	feedCache    contract.IFeedCache
	logger       usecasecontract.IAppLogger
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(reactionRepo contract.IReactionRepository, postRepo contract.IPostRepository, logger usecasecontract.IAppLogger) *ReactionUsecase {
	return &ReactionUsecase{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		logger:       logger,
	}
}

// SetFeedCache enables invalidation of the cached feed after counters change.
func (u *ReactionUsecase) SetFeedCache(cache contract.IFeedCache) {
	u.feedCache = cache
}

// GetClientReaction retrieves the active reaction (if any) a client has on a post.
func (u *ReactionUsecase) GetClientReaction(ctx context.Context, clientID, postID string) (*entity.ReactionType, error) {
	reaction, err := u.reactionRepo.GetReaction(ctx, clientID, postID)
	if err != nil {
		if errors.Is(err, contract.ErrReactionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client reaction: %w", err)
	}
	return reaction.Reaction.Ptr(), nil
}

// ToggleClientReaction applies reactionType to a post for a client.
// Repeating the current reaction removes it; the other kind replaces it.
func (u *ReactionUsecase) ToggleClientReaction(ctx context.Context, clientID, postID string, reactionType entity.ReactionType) (*entity.ReactionType, error) {
	if !reactionType.Valid() {
		return nil, ErrInvalidReaction
	}
	if _, err := u.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	existing, err := u.reactionRepo.GetReaction(ctx, clientID, postID)
	if err != nil {
		if errors.Is(err, contract.ErrReactionNotFound) {
			existing = nil
		} else {
			return nil, fmt.Errorf("failed to retrieve existing reaction: %w", err)
		}
	}

	var result *entity.ReactionType
	if existing != nil && existing.Reaction == reactionType {
		if err := u.reactionRepo.DeleteReaction(ctx, clientID, postID); err != nil && !errors.Is(err, contract.ErrReactionNotFound) {
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
	} else {
		if err := u.reactionRepo.UpsertReaction(ctx, &entity.PostReaction{
			ClientID: clientID,
			PostID:   postID,
			Reaction: reactionType,
		}); err != nil {
			return nil, fmt.Errorf("failed to save reaction: %w", err)
		}
		result = reactionType.Ptr()
	}

	u.refreshCounts(ctx, postID)
	return result, nil
}

// GetReactionCounts retrieves the total number of likes and dislikes for a post.
func (u *ReactionUsecase) GetReactionCounts(ctx context.Context, postID string) (likes, dislikes int64, err error) {
	likes, err = u.reactionRepo.CountByPostIDAndType(ctx, postID, entity.ReactionLike)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count likes for post %s: %w", postID, err)
	}

	dislikes, err = u.reactionRepo.CountByPostIDAndType(ctx, postID, entity.ReactionDislike)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count dislikes for post %s: %w", postID, err)
	}

	return likes, dislikes, nil
}

// refreshCounts recomputes the denormalized counters on the post. Failures are logged only.
func (u *ReactionUsecase) refreshCounts(ctx context.Context, postID string) {
	likes, dislikes, err := u.GetReactionCounts(ctx, postID)
	if err != nil {
		u.logger.Warnf("reaction counts for post %s not refreshed: %v", postID, err)
		return
	}
	if err := u.postRepo.SetReactionCounts(ctx, postID, likes, dislikes); err != nil {
		u.logger.Warnf("failed to store reaction counts for post %s: %v", postID, err)
		return
	}
	if u.feedCache != nil {
		if err := u.feedCache.InvalidateFeed(ctx); err != nil {
			u.logger.Warnf("failed to invalidate feed cache: %v", err)
		}
	}
}
