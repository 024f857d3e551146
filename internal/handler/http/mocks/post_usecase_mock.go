package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	"github.com/mikiasgoitom/Inflo/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the IPostUseCase interface
type MockPostUsecase struct {
	ShouldFailGetFeed bool
	ShouldFailGetPost bool

	MockPosts []entity.Post
	// LastInterests records the selection passed to the last GetFeed call.
	LastInterests entity.InterestSelection
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	video := "https://www.youtube.com/watch?v=abc"
	return &MockPostUsecase{
		MockPosts: []entity.Post{
			{ID: "post-1", AgentID: "agent-1", Content: "Live set tonight", Agent: &entity.Agent{ID: "agent-1", Username: "dj", Interests: "Music, Art"}},
			{ID: "post-2", AgentID: "agent-2", Content: "Trail run recap", VideoURL: &video, Agent: &entity.Agent{ID: "agent-2", Username: "runner", Interests: "Fitness"}},
		},
	}
}

func (m *MockPostUsecase) GetFeed(ctx context.Context, interests entity.InterestSelection) ([]entity.Post, error) {
	m.LastInterests = interests
	if m.ShouldFailGetFeed {
		return nil, errors.New("failed to get posts")
	}
	return usecase.FilterPostsByInterests(m.MockPosts, interests), nil
}

func (m *MockPostUsecase) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	if m.ShouldFailGetPost {
		return nil, errors.New("failed to get post")
	}
	for _, p := range m.MockPosts {
		if p.ID == postID {
			p := p
			return &p, nil
		}
	}
	return nil, contract.ErrPostNotFound
}
