package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
)

// PollUsecase records true/false answers to question posts in the local store.
type PollUsecase struct {
	store contract.ILocalStore
}

func NewPollUsecase(store contract.ILocalStore) *PollUsecase {
	return &PollUsecase{store: store}
}

// Vote records answer for postID. Each post can be answered once.
func (u *PollUsecase) Vote(ctx context.Context, postID, answer string) error {
	if answer != "true" && answer != "false" {
		return ErrInvalidPollAnswer
	}
	if _, voted, err := u.GetVote(ctx, postID); err != nil {
		return err
	} else if voted {
		return ErrAlreadyVoted
	}
	if err := u.store.Set(ctx, pollVoteKey(postID), answer); err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

// GetVote returns the recorded answer for postID, if any.
func (u *PollUsecase) GetVote(ctx context.Context, postID string) (string, bool, error) {
	answer, err := u.store.Get(ctx, pollVoteKey(postID))
	if err != nil {
		if errors.Is(err, contract.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read vote: %w", err)
	}
	return answer, true, nil
}
