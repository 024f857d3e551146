package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// MockAuthUsecase accepts exactly one token.
type MockAuthUsecase struct {
	ValidToken string
	MockUser   entity.AuthUser
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		ValidToken: "mock_access_token",
		MockUser:   entity.AuthUser{ID: "mock-user-id", Email: "test@example.com"},
	}
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.AuthUser, error) {
	if accessToken != m.ValidToken {
		return nil, errors.New("invalid token")
	}
	u := m.MockUser
	return &u, nil
}

func (m *MockAuthUsecase) IssueAccessToken(userID, email string) (string, error) {
	return m.ValidToken, nil
}
