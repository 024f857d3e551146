package contract

import (
	"context"

	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// IAgentRepository defines the interface for agent data persistence.
type IAgentRepository interface {
	CreateAgent(ctx context.Context, agent *entity.Agent) error
	GetAgentByID(ctx context.Context, agentID string) (*entity.Agent, error)
	GetAgentByUsername(ctx context.Context, username string) (*entity.Agent, error)
	GetAllAgents(ctx context.Context) ([]*entity.Agent, error)
}
