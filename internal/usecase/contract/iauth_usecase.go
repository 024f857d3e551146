package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IAuthUseCase resolves the optional signed-in identity of a request.
type IAuthUseCase interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.AuthUser, error)
	IssueAccessToken(userID, email string) (string, error)
}
