package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// AgentRepository represents the MongoDB implementation of the IAgentRepository interface.
type AgentRepository struct {
	collection *mongo.Collection
}

var _ contract.IAgentRepository = (*AgentRepository)(nil)

// NewAgentRepository creates and returns a new AgentRepository instance.
func NewAgentRepository(db *mongo.Database) *AgentRepository {
	return &AgentRepository{
		collection: db.Collection("agents"),
	}
}

// CreateAgent inserts a new agent record into the database.
func (r *AgentRepository) CreateAgent(ctx context.Context, agent *entity.Agent) error {
	_, err := r.collection.InsertOne(ctx, agent)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("agent with this id or username already exists")
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// GetAgentByID retrieves a single agent by its unique ID.
func (r *AgentRepository) GetAgentByID(ctx context.Context, agentID string) (*entity.Agent, error) {
	return r.findOne(ctx, bson.M{"_id": agentID})
}

// GetAgentByUsername retrieves a single agent by its username.
func (r *AgentRepository) GetAgentByUsername(ctx context.Context, username string) (*entity.Agent, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetAllAgents retrieves all agents ordered by display name.
func (r *AgentRepository) GetAllAgents(ctx context.Context) ([]*entity.Agent, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve agents: %w", err)
	}
	defer cursor.Close(ctx)

	var agents []*entity.Agent
	if err = cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}

func (r *AgentRepository) findOne(ctx context.Context, filter bson.M) (*entity.Agent, error) {
	var agent entity.Agent
	err := r.collection.FindOne(ctx, filter).Decode(&agent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to retrieve agent: %w", err)
	}
	return &agent, nil
}
