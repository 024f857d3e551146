package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Inflo/internal/domain/contract"
	"github.com/mikiasgoitom/Inflo/internal/domain/entity"
)

// ReactionRepository represents the MongoDB implementation of the IReactionRepository interface.
type ReactionRepository struct {
	collection *mongo.Collection
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// NewReactionRepository creates and returns a new ReactionRepository instance.
func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{
		collection: db.Collection("post_reactions"),
	}
}

// EnsureIndexes creates the unique (client_id, post_id) index that keeps one reaction per pair.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "post_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("client_post_unique"),
		},
		{
			Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "reaction", Value: 1}},
			Options: options.Index().SetName("post_reaction"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create reaction indexes: %w", err)
	}
	return nil
}

// UpsertReaction creates or replaces a client's reaction on a post.
func (r *ReactionRepository) UpsertReaction(ctx context.Context, reaction *entity.PostReaction) error {
	filter := bson.M{
		"client_id": reaction.ClientID,
		"post_id":   reaction.PostID,
	}

	now := time.Now().UTC()
	updateDoc := bson.M{
		"$set": bson.M{
			"reaction":   reaction.Reaction,
			"updated_at": now,
		},
		// Fields to set ONLY on initial insert
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"created_at": now,
		},
	}

	res, err := r.collection.UpdateOne(ctx, filter, updateDoc, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to create or update reaction record: %w", err)
	}

	reaction.UpdatedAt = now
	if res.UpsertedID != nil {
		if id, ok := res.UpsertedID.(string); ok {
			reaction.ID = id
		} else {
			return fmt.Errorf("upserted ID is not a string, got type %T", res.UpsertedID)
		}
		reaction.CreatedAt = now
	}
	return nil
}

// DeleteReaction removes a client's reaction on a post.
func (r *ReactionRepository) DeleteReaction(ctx context.Context, clientID, postID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"client_id": clientID, "post_id": postID})
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrReactionNotFound
	}
	return nil
}

// GetReaction retrieves the reaction of a client on a post.
func (r *ReactionRepository) GetReaction(ctx context.Context, clientID, postID string) (*entity.PostReaction, error) {
	var reaction entity.PostReaction
	err := r.collection.FindOne(ctx, bson.M{"client_id": clientID, "post_id": postID}).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return &reaction, nil
}

// CountByPostIDAndType counts the reactions of one kind on a post.
func (r *ReactionRepository) CountByPostIDAndType(ctx context.Context, postID string, reactionType entity.ReactionType) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"post_id": postID, "reaction": reactionType})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s reactions: %w", reactionType, err)
	}
	return count, nil
}
