package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// AuthUsecase resolves signed-in identities from access tokens.
type AuthUsecase struct {
	jwtService JWTService
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

func NewAuthUsecase(jwtService JWTService, logger usecasecontract.IAppLogger) *AuthUsecase {
	return &AuthUsecase{jwtService: jwtService, logger: logger}
}

// Authenticate validates an access token and returns the user it was issued to.
func (u *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.AuthUser, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrInvalidToken
	}
	claims, err := u.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		u.logger.Debugf("access token rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &entity.AuthUser{ID: claims.UserID, Email: claims.Email}, nil
}

// IssueAccessToken signs a token for userID.
func (u *AuthUsecase) IssueAccessToken(userID, email string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", fmt.Errorf("user id is required")
	}
	return u.jwtService.GenerateAccessToken(userID, email)
}
