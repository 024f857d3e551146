package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inflo/internal/usecase/contract"
)

// SeedUsecase loads demonstration data into the post store.
type SeedUsecase struct {
	agentRepo     contract.IAgentRepository
	postRepo      contract.IPostRepository
	clientRepo    contract.IClientRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

func NewSeedUsecase(
	agentRepo contract.IAgentRepository,
	postRepo contract.IPostRepository,
	clientRepo contract.IClientRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *SeedUsecase {
	return &SeedUsecase{
		agentRepo:     agentRepo,
		postRepo:      postRepo,
		clientRepo:    clientRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// SeedSamplePosts stores the sample posts and their agents, skipping any already present.
// It returns the number of posts inserted.
func (uc *SeedUsecase) SeedSamplePosts(ctx context.Context, now time.Time) (int, error) {
	inserted := 0
	for _, post := range SamplePosts(now) {
		if post.Agent != nil {
			if err := uc.ensureAgent(ctx, post.Agent); err != nil {
				return inserted, err
			}
		}

		_, err := uc.postRepo.GetPostByID(ctx, post.ID)
		if err == nil {
			uc.logger.Debugf("seed: post %s already present", post.ID)
			continue
		}
		if !errors.Is(err, contract.ErrPostNotFound) {
			return inserted, fmt.Errorf("failed to look up post %s: %w", post.ID, err)
		}

		p := post
		if err := uc.postRepo.CreatePost(ctx, &p); err != nil {
			return inserted, err
		}
		inserted++
		uc.logger.Infof("seed: created post %s", post.ID)
	}
	return inserted, nil
}

func (uc *SeedUsecase) ensureAgent(ctx context.Context, agent *entity.Agent) error {
	_, err := uc.agentRepo.GetAgentByUsername(ctx, agent.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, contract.ErrAgentNotFound) {
		return fmt.Errorf("failed to look up agent %s: %w", agent.Username, err)
	}
	if err := uc.agentRepo.CreateAgent(ctx, agent); err != nil {
		return err
	}
	uc.logger.Infof("seed: created agent %s", agent.Username)
	return nil
}

// RegisterClient returns the client profile bound to userID, creating one when none exists.
// The boolean reports whether a profile was created.
func (uc *SeedUsecase) RegisterClient(ctx context.Context, userID, nickname string) (*entity.Client, bool, error) {
	if userID == "" {
		return nil, false, errors.New("user id is required")
	}
	existing, err := uc.clientRepo.GetClientByUserID(ctx, userID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, contract.ErrClientNotFound) {
		return nil, false, fmt.Errorf("failed to look up client: %w", err)
	}

	if nickname == "" {
		nickname = userID
	}
	client := &entity.Client{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    &userID,
		Nickname:  nickname,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, false, err
	}
	return client, true, nil
}

// Agents lists every stored agent.
func (uc *SeedUsecase) Agents(ctx context.Context) ([]*entity.Agent, error) {
	return uc.agentRepo.GetAllAgents(ctx)
}
