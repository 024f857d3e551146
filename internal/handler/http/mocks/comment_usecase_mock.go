package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	ShouldFailGetComments   bool
	ShouldFailCreateComment bool
	PostNotFound            bool

	MockComments []entity.CommentWithAuthor
	// LastUserID records the user passed to the last CreateComment call.
	LastUserID *string
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	agentID := "agent-1"
	return &MockCommentUsecase{
		MockComments: []entity.CommentWithAuthor{
			{
				Comment:    entity.Comment{ID: "comment-1", PostID: "post-1", Content: "First!", AuthorType: entity.AuthorTypeAgent, AuthorID: &agentID},
				AuthorName: "DJ Agent",
			},
		},
	}
}

func (m *MockCommentUsecase) GetPostComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	if m.ShouldFailGetComments {
		return nil, errors.New("failed to get comments")
	}
	return m.MockComments, nil
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, postID, content string, userID *string) (*entity.CommentWithAuthor, error) {
	m.LastUserID = userID
	if m.PostNotFound {
		return nil, contract.ErrPostNotFound
	}
	if m.ShouldFailCreateComment {
		return nil, errors.New("failed to create comment")
	}
	name := "Anonymous"
	if userID != nil {
		name = "You"
	}
	return &entity.CommentWithAuthor{
		Comment: entity.Comment{
			ID:         "comment-new",
			PostID:     postID,
			Content:    content,
			AuthorType: entity.AuthorTypeClient,
			AuthorID:   userID,
			CreatedAt:  time.Now(),
		},
		AuthorName: name,
	}, nil
}
