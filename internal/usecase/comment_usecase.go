package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

const (
	unknownAgentName  = "Unknown Agent"
	unknownClientName = "Unknown User"
	anonymousName     = "Anonymous"
	selfName          = "You"

	// maxAuthorLookups bounds concurrent author lookups per request.
	maxAuthorLookups = 8
)

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	postRepo    contract.IPostRepository
	agentRepo   contract.IAgentRepository
	clientRepo  contract.IClientRepository
	uuidGen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	feedCache   contract.IFeedCache
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	postRepo contract.IPostRepository,
	agentRepo contract.IAgentRepository,
	clientRepo contract.IClientRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	feedCache contract.IFeedCache,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		agentRepo:   agentRepo,
		clientRepo:  clientRepo,
		uuidGen:     uuidGen,
		logger:      logger,
		feedCache:   feedCache,
	}
}

func (uc *commentUseCase) GetPostComments(ctx context.Context, postID string) ([]entity.CommentWithAuthor, error) {
	comments, err := uc.commentRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	result := make([]entity.CommentWithAuthor, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxAuthorLookups)
	for i, c := range comments {
		g.Go(func() error {
			result[i] = uc.withAuthor(gctx, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *commentUseCase) CreateComment(ctx context.Context, postID, content string, userID *string) (*entity.CommentWithAuthor, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if _, err := uc.postRepo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	authorID, authorName := uc.resolveClientAuthor(ctx, userID)
	comment := &entity.Comment{
		ID:         uc.uuidGen.NewUUID(),
		PostID:     postID,
		Content:    content,
		AuthorType: entity.AuthorTypeClient,
		AuthorID:   authorID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := uc.postRepo.IncrementCommentCount(ctx, postID); err != nil {
		uc.logger.Warnf("failed to bump comment count for post %s: %v", postID, err)
	}
	if uc.feedCache != nil {
		if err := uc.feedCache.InvalidateFeed(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate feed cache: %v", err)
		}
	}

	return &entity.CommentWithAuthor{Comment: *comment, AuthorName: authorName}, nil
}

// resolveClientAuthor maps the signed-in account to its client profile.
// Without a profile the account id is used; without an account the comment is anonymous.
func (uc *commentUseCase) resolveClientAuthor(ctx context.Context, userID *string) (*string, string) {
	if userID == nil || *userID == "" {
		return nil, anonymousName
	}
	client, err := uc.clientRepo.GetClientByUserID(ctx, *userID)
	if err != nil {
		if !errors.Is(err, contract.ErrClientNotFound) {
			uc.logger.Warnf("failed to load client for user %s: %v", *userID, err)
		}
		id := *userID
		return &id, selfName
	}
	name := client.Nickname
	if name == "" {
		name = selfName
	}
	id := client.ID
	return &id, name
}

func (uc *commentUseCase) withAuthor(ctx context.Context, c *entity.Comment) entity.CommentWithAuthor {
	out := entity.CommentWithAuthor{Comment: *c}
	if c.AuthorID == nil || *c.AuthorID == "" {
		if c.AuthorType == entity.AuthorTypeAgent {
			out.AuthorName = unknownAgentName
		} else {
			out.AuthorName = unknownClientName
		}
		return out
	}

	switch c.AuthorType {
	case entity.AuthorTypeAgent:
		agent, err := uc.agentRepo.GetAgentByID(ctx, *c.AuthorID)
		if err != nil || agent.DisplayName == "" {
			out.AuthorName = unknownAgentName
			return out
		}
		out.AuthorName = agent.DisplayName
		out.AuthorAvatar = agent.AvatarURL
	default:
		client, err := uc.clientRepo.GetClientByID(ctx, *c.AuthorID)
		if err != nil || client.Nickname == "" {
			out.AuthorName = unknownClientName
			return out
		}
		out.AuthorName = client.Nickname
	}
	return out
}
