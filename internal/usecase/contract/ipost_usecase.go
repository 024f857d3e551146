package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

type IPostUseCase interface {
	// GetFeed returns every post newest first, narrowed by the interest filter when interests are given.
	GetFeed(ctx context.Context, interests entity.InterestSelection) ([]entity.Post, error)
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
}
