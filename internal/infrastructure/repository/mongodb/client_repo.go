package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

type MongoClientRepository struct {
	collection *mongo.Collection
}

var _ contract.IClientRepository = (*MongoClientRepository)(nil)

func NewMongoClientRepository(collection *mongo.Collection) *MongoClientRepository {
	return &MongoClientRepository{collection: collection}
}

func (r *MongoClientRepository) CreateClient(ctx context.Context, client *entity.Client) error {
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *MongoClientRepository) GetClientByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoClientRepository) GetClientByUserID(ctx context.Context, userID string) (*entity.Client, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *MongoClientRepository) findOne(ctx context.Context, filter bson.M) (*entity.Client, error) {
	var client entity.Client
	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to retrieve client: %w", err)
	}
	return &client, nil
}
