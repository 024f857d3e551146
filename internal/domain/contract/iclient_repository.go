package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

type IClientRepository interface {
	CreateClient(ctx context.Context, client *entity.Client) error
	GetClientByID(ctx context.Context, id string) (*entity.Client, error)
	// GetClientByUserID returns the profile owned by a signed-in account, if any.
	GetClientByUserID(ctx context.Context, userID string) (*entity.Client, error)
}
